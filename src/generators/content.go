package generators

import (
	"mockapi/src/domain"
	"mockapi/src/domain/entities"
)

func generatePosts(src *Source, count int, parents Parents) ([]domain.Record, error) {
	users := parents[domain.Users]
	categories := parents[domain.PostCategories]

	return build(count, func(id int) entities.Post {
		return entities.Post{
			ID:         id,
			UserID:     sampleID(src, users),
			CategoryID: sampleID(src, categories),
			Title:      src.Sentence(src.IntRange(4, 9)),
			Body:       src.Paragraphs(2),
			CreatedAt:  src.Timestamp(365),
		}
	}), nil
}

func generateComments(src *Source, count int, parents Parents) ([]domain.Record, error) {
	posts := parents[domain.Posts]

	return build(count, func(id int) entities.Comment {
		return entities.Comment{
			ID:     id,
			PostID: sampleID(src, posts),
			Name:   src.Sentence(5),
			Email:  src.fake.Email(),
			Body:   src.Paragraphs(1),
		}
	}), nil
}

func generateNotes(src *Source, count int, parents Parents) ([]domain.Record, error) {
	users := parents[domain.Users]

	return build(count, func(id int) entities.Note {
		return entities.Note{
			ID:        id,
			UserID:    sampleID(src, users),
			Title:     src.Words(src.IntRange(2, 5)),
			Content:   src.Paragraphs(1),
			CreatedAt: src.Timestamp(180),
		}
	}), nil
}

func generateTodos(src *Source, count int, parents Parents) ([]domain.Record, error) {
	users := parents[domain.Users]

	return build(count, func(id int) entities.Todo {
		return entities.Todo{
			ID:        id,
			UserID:    sampleID(src, users),
			Title:     src.Sentence(src.IntRange(3, 7)),
			Completed: src.Bool(),
		}
	}), nil
}

func generatePhotos(src *Source, count int, _ Parents) ([]domain.Record, error) {
	return build(count, func(id int) entities.Photo {
		return entities.Photo{
			ID:           id,
			AlbumID:      src.IntRange(1, 100),
			Title:        src.Words(3),
			URL:          src.fake.ImageURL(600, 600),
			ThumbnailURL: src.fake.ImageURL(150, 150),
		}
	}), nil
}
