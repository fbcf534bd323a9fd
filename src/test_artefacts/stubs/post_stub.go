package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"mockapi/src/domain/entities"
)

type PostStub struct {
	post entities.Post
}

func NewPostStub() PostStub {
	post := entities.Post{
		ID:         gofakeit.IntRange(1, 1000),
		UserID:     gofakeit.IntRange(1, 100),
		CategoryID: gofakeit.IntRange(1, 10),
		Title:      gofakeit.Sentence(5),
		Body:       gofakeit.Paragraph(2, 3, 8, "\n"),
		CreatedAt:  gofakeit.Date().UTC().Truncate(time.Second).Format(time.RFC3339),
	}

	return PostStub{post: post}
}

func (ps PostStub) WithID(id int) PostStub {
	ps.post.ID = id
	return ps
}

func (ps PostStub) WithUserID(userID int) PostStub {
	ps.post.UserID = userID
	return ps
}

func (ps PostStub) WithTitle(title string) PostStub {
	ps.post.Title = title
	return ps
}

func (ps PostStub) Get() entities.Post {
	return ps.post
}
