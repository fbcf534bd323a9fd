package entities

type Note struct {
	ID        int    `json:"id" yaml:"id" bson:"id"`
	UserID    int    `json:"userId" yaml:"userId" bson:"userId"`
	Title     string `json:"title" yaml:"title" bson:"title"`
	Content   string `json:"content" yaml:"content" bson:"content"`
	CreatedAt string `json:"createdAt" yaml:"createdAt" bson:"createdAt"`
}

func (n Note) RecordID() int { return n.ID }

type Todo struct {
	ID        int    `json:"id" yaml:"id" bson:"id"`
	UserID    int    `json:"userId" yaml:"userId" bson:"userId"`
	Title     string `json:"title" yaml:"title" bson:"title"`
	Completed bool   `json:"completed" yaml:"completed" bson:"completed"`
}

func (t Todo) RecordID() int { return t.ID }

// Photo não tem dependências; albumId é só um número entre 1 e 100.
type Photo struct {
	ID           int    `json:"id" yaml:"id" bson:"id"`
	AlbumID      int    `json:"albumId" yaml:"albumId" bson:"albumId"`
	Title        string `json:"title" yaml:"title" bson:"title"`
	URL          string `json:"url" yaml:"url" bson:"url"`
	ThumbnailURL string `json:"thumbnailUrl" yaml:"thumbnailUrl" bson:"thumbnailUrl"`
}

func (p Photo) RecordID() int { return p.ID }
