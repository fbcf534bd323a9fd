package entities

// Product copia o nome da categoria por valor (desnormalizado), não o id.
type Product struct {
	ID          int     `json:"id" yaml:"id" bson:"id"`
	Title       string  `json:"title" yaml:"title" bson:"title"`
	Description string  `json:"description" yaml:"description" bson:"description"`
	Price       float64 `json:"price" yaml:"price" bson:"price"`
	Category    string  `json:"category" yaml:"category" bson:"category"`
	Brand       string  `json:"brand" yaml:"brand" bson:"brand"`
	Stock       int     `json:"stock" yaml:"stock" bson:"stock"`
	Image       string  `json:"image" yaml:"image" bson:"image"`
	Rating      Rating  `json:"rating" yaml:"rating" bson:"rating"`
}

type Rating struct {
	Rate  float64 `json:"rate" yaml:"rate" bson:"rate"`
	Count int     `json:"count" yaml:"count" bson:"count"`
}

func (p Product) RecordID() int { return p.ID }
