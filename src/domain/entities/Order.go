package entities

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}

type Cart struct {
	ID       int        `json:"id" yaml:"id" bson:"id"`
	UserID   int        `json:"userId" yaml:"userId" bson:"userId"`
	Date     string     `json:"date" yaml:"date" bson:"date"`
	Products []CartItem `json:"products" yaml:"products" bson:"products"`
}

type CartItem struct {
	ProductID int `json:"productId" yaml:"productId" bson:"productId"`
	Quantity  int `json:"quantity" yaml:"quantity" bson:"quantity"`
}

func (c Cart) RecordID() int { return c.ID }

// Order.Total é sempre a soma arredondada (2 casas) de price * quantity dos itens.
type Order struct {
	ID        int         `json:"id" yaml:"id" bson:"id"`
	UserID    int         `json:"userId" yaml:"userId" bson:"userId"`
	Items     []OrderItem `json:"items" yaml:"items" bson:"items"`
	Total     float64     `json:"total" yaml:"total" bson:"total"`
	Status    OrderStatus `json:"status" yaml:"status" bson:"status"`
	CreatedAt string      `json:"createdAt" yaml:"createdAt" bson:"createdAt"`
}

type OrderItem struct {
	ProductID int     `json:"productId" yaml:"productId" bson:"productId"`
	Quantity  int     `json:"quantity" yaml:"quantity" bson:"quantity"`
	Price     float64 `json:"price" yaml:"price" bson:"price"`
}

func (o Order) RecordID() int { return o.ID }
