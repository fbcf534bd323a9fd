package stubs

import (
	"github.com/brianvoe/gofakeit/v6"

	"mockapi/src/domain/entities"
)

type UserStub struct {
	user entities.User
}

func NewUserStub() UserStub {
	user := entities.User{
		ID:       gofakeit.IntRange(1, 1000),
		Name:     gofakeit.Name(),
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
		Role:     entities.RoleUser,
		Address: entities.Address{
			Street:  gofakeit.Street(),
			Suite:   "Apt. 1",
			City:    gofakeit.City(),
			State:   gofakeit.StateAbr(),
			Zipcode: gofakeit.Zip(),
			Geo: entities.Geo{
				Lat: gofakeit.Latitude(),
				Lng: gofakeit.Longitude(),
			},
		},
		Phone:   gofakeit.Phone(),
		Website: gofakeit.DomainName(),
		Company: entities.Company{
			Name:        gofakeit.Company(),
			CatchPhrase: gofakeit.Slogan(),
			BS:          gofakeit.BS(),
		},
	}

	return UserStub{user: user}
}

func (us UserStub) WithID(id int) UserStub {
	us.user.ID = id
	return us
}

func (us UserStub) WithRole(role entities.Role) UserStub {
	us.user.Role = role
	return us
}

func (us UserStub) WithGeo(lat, lng float64) UserStub {
	us.user.Address.Geo = entities.Geo{Lat: lat, Lng: lng}
	return us
}

func (us UserStub) Get() entities.User {
	return us.user
}
