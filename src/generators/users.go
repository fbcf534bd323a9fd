package generators

import (
	"fmt"
	"strings"

	"mockapi/src/domain"
	"mockapi/src/domain/entities"
)

func generateUsers(src *Source, count int, _ Parents) ([]domain.Record, error) {
	return build(count, func(id int) entities.User {
		addr := src.Address()
		return entities.User{
			ID:       id,
			Name:     src.fake.Name(),
			Username: src.Username(),
			Email:    src.fake.Email(),
			Role:     pick(src, entities.Roles),
			Address: entities.Address{
				Street:  addr.Address,
				Suite:   src.Suite(),
				City:    addr.City,
				State:   addr.State,
				Zipcode: addr.PostalCode,
				Geo: entities.Geo{
					Lat: addr.Coordinates.Latitude,
					Lng: addr.Coordinates.Longitude,
				},
			},
			Phone:   src.fake.Phone(),
			Website: src.fake.DomainName(),
			Company: entities.Company{
				Name:        src.fake.Company(),
				CatchPhrase: src.fake.Slogan(),
				BS:          src.fake.BS(),
			},
		}
	}), nil
}

// Vocabulários fixos das categorias; acima do tamanho da lista os nomes ganham sufixo.
var (
	postCategoryNames = []string{
		"Technology", "Travel", "Food", "Lifestyle", "Science",
		"Health", "Finance", "Sports", "Culture", "Education",
	}
	productCategoryNames = []string{
		"Electronics", "Clothing", "Books", "Home", "Sports",
		"Beauty", "Toys", "Grocery", "Garden", "Automotive",
		"Jewelery", "Music", "Office", "Pet Supplies", "Health",
	}
)

func categoryName(names []string, id int) string {
	name := names[(id-1)%len(names)]
	if round := (id - 1) / len(names); round > 0 {
		name = fmt.Sprintf("%s %d", name, round+1)
	}
	return name
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func generatePostCategories(src *Source, count int, _ Parents) ([]domain.Record, error) {
	return build(count, func(id int) entities.PostCategory {
		name := categoryName(postCategoryNames, id)
		return entities.PostCategory{
			ID:          id,
			Name:        name,
			Slug:        slugify(name),
			Description: src.Sentence(10),
		}
	}), nil
}

func generateProductCategories(src *Source, count int, _ Parents) ([]domain.Record, error) {
	return build(count, func(id int) entities.ProductCategory {
		name := categoryName(productCategoryNames, id)
		return entities.ProductCategory{
			ID:          id,
			Name:        name,
			Slug:        slugify(name),
			Description: src.Sentence(10),
		}
	}), nil
}
