package entities

type Post struct {
	ID         int    `json:"id" yaml:"id" bson:"id"`
	UserID     int    `json:"userId" yaml:"userId" bson:"userId"`
	CategoryID int    `json:"categoryId" yaml:"categoryId" bson:"categoryId"`
	Title      string `json:"title" yaml:"title" bson:"title"`
	Body       string `json:"body" yaml:"body" bson:"body"`
	CreatedAt  string `json:"createdAt" yaml:"createdAt" bson:"createdAt"`
}

func (p Post) RecordID() int { return p.ID }

type Comment struct {
	ID     int    `json:"id" yaml:"id" bson:"id"`
	PostID int    `json:"postId" yaml:"postId" bson:"postId"`
	Name   string `json:"name" yaml:"name" bson:"name"`
	Email  string `json:"email" yaml:"email" bson:"email"`
	Body   string `json:"body" yaml:"body" bson:"body"`
}

func (c Comment) RecordID() int { return c.ID }
