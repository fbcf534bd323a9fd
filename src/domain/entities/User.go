package entities

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleEditor Role = "editor"
)

var Roles = []Role{RoleAdmin, RoleUser, RoleEditor}

// User é a entidade raiz: não possui chaves estrangeiras.
type User struct {
	ID       int     `json:"id" yaml:"id" bson:"id"`
	Name     string  `json:"name" yaml:"name" bson:"name"`
	Username string  `json:"username" yaml:"username" bson:"username"`
	Email    string  `json:"email" yaml:"email" bson:"email"`
	Role     Role    `json:"role" yaml:"role" bson:"role"`
	Address  Address `json:"address" yaml:"address" bson:"address"`
	Phone    string  `json:"phone" yaml:"phone" bson:"phone"`
	Website  string  `json:"website" yaml:"website" bson:"website"`
	Company  Company `json:"company" yaml:"company" bson:"company"`
}

type Address struct {
	Street  string `json:"street" yaml:"street" bson:"street"`
	Suite   string `json:"suite" yaml:"suite" bson:"suite"`
	City    string `json:"city" yaml:"city" bson:"city"`
	State   string `json:"state" yaml:"state" bson:"state"`
	Zipcode string `json:"zipcode" yaml:"zipcode" bson:"zipcode"`
	Geo     Geo    `json:"geo" yaml:"geo" bson:"geo"`
}

type Geo struct {
	Lat float64 `json:"lat" yaml:"lat" bson:"lat"`
	Lng float64 `json:"lng" yaml:"lng" bson:"lng"`
}

type Company struct {
	Name        string `json:"name" yaml:"name" bson:"name"`
	CatchPhrase string `json:"catchPhrase" yaml:"catchPhrase" bson:"catchPhrase"`
	BS          string `json:"bs" yaml:"bs" bson:"bs"`
}

func (u User) RecordID() int { return u.ID }
