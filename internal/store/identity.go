package store

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/BadgerShop_Go/internal/domain"
)

// Random data tables for generated demo identities

var firstNames = []string{
	"Alex", "Jordan", "Casey", "Riley", "Taylor", "Morgan", "Quinn", "Avery",
	"Blake", "Dakota", "Emery", "Finley", "Gray", "Harper", "Indigo", "Jules",
	"Kai", "Lane", "Mika", "Nova", "Ocean", "Parker", "Quincy", "River",
	"Sage", "Tatum", "Uma", "Vale", "Wren", "Xander", "Yuki", "Zara",
}

var lastNames = []string{
	"Anderson", "Brown", "Clark", "Davis", "Evans", "Fisher", "Garcia",
	"Harris", "Jackson", "King", "Lee", "Miller", "Nelson", "Owen", "Parker",
	"Quinn", "Roberts", "Smith", "Taylor", "Underwood", "Vargas", "Wilson",
	"Young", "Zhang",
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"San Francisco", "Indianapolis", "Seattle", "Denver", "Washington",
	"Boston", "El Paso", "Nashville", "Detroit",
}

var streetNames = []string{
	"Main Street", "Oak Avenue", "Maple Drive", "Cedar Lane", "Pine Road",
	"Elm Street", "Washington Blvd", "Park Avenue", "Broadway", "5th Avenue",
	"Sunset Boulevard", "Hollywood Blvd", "Michigan Avenue",
	"Peachtree Street", "Bourbon Street", "Beale Street", "Lombard Street",
	"Wall Street", "Rodeo Drive",
}

var streetTypes = []string{
	"Street", "Avenue", "Drive", "Lane", "Road", "Boulevard", "Court",
	"Place", "Way",
}

var emailDomains = []string{
	"example.com", "demo.net", "test.org", "sample.co", "fake.email",
}

var months = []string{
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

// GenerateRandomUserData mints a fresh demo identity. The user id doubles
// as the Badger user id, so it must be unique across demo visitors.
func GenerateRandomUserData() *domain.UserData {
	firstName := pick(firstNames)
	lastName := pick(lastNames)

	return &domain.UserData{
		UserID:      "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9],
		FirstName:   firstName,
		LastName:    lastName,
		Email:       randomEmail(firstName, lastName),
		Address:     randomAddress(),
		MemberSince: fmt.Sprintf("%s %d", pick(months), 2022+rand.Intn(3)),
	}
}

func randomEmail(firstName, lastName string) string {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(firstName),
		strings.ToLower(lastName),
		rand.Intn(999),
		pick(emailDomains),
	)
}

func randomAddress() domain.Address {
	return domain.Address{
		Street: fmt.Sprintf("%d %s %s, Apt %d",
			rand.Intn(9999)+1, pick(streetNames), pick(streetTypes), rand.Intn(999)+1),
		City:    pick(cities),
		ZipCode: fmt.Sprintf("%d", rand.Intn(90000)+10000),
	}
}

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}
