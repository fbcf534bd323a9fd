package entities

// PostCategory e ProductCategory são tabelas de lookup planas.
type PostCategory struct {
	ID          int    `json:"id" yaml:"id" bson:"id"`
	Name        string `json:"name" yaml:"name" bson:"name"`
	Slug        string `json:"slug" yaml:"slug" bson:"slug"`
	Description string `json:"description" yaml:"description" bson:"description"`
}

func (c PostCategory) RecordID() int { return c.ID }

type ProductCategory struct {
	ID          int    `json:"id" yaml:"id" bson:"id"`
	Name        string `json:"name" yaml:"name" bson:"name"`
	Slug        string `json:"slug" yaml:"slug" bson:"slug"`
	Description string `json:"description" yaml:"description" bson:"description"`
}

func (c ProductCategory) RecordID() int { return c.ID }
