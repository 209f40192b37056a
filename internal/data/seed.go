package data

import "time"

// SeedUsers returns the fixture users installed by the initial migration
// and by NewSeededMemoryStore.
func SeedUsers() []User {
	return []User{
		seedUser(1, "Peter", "Loew", "ploew@example.com", true, 1988, time.February, 11),
		seedUser(2, "Benjamin Franklin", "Gates", "bfgates@example.com", true, 1978, time.May, 24),
		seedUser(3, "Castor", "Troy", "ctroy@example.com", false, 1998, time.August, 21),
		seedUser(4, "Memphis", "Raines", "mraines@example.com", true, 1991, time.January, 16),
		seedUser(5, "Stanley", "Goodspeed", "sgodspeed@example.com", true, 1996, time.September, 7),
		seedUser(6, "H.I.", "McDunnough", "himcdunnough@example.com", true, 1983, time.October, 29),
		seedUser(7, "Cameron", "Poe", "cpoe@example.com", false, 1987, time.April, 7),
		seedUser(8, "Edward", "Malus", "emalus@example.com", false, 1989, time.March, 11),
		seedUser(9, "Damon", "Macready", "dmacready@example.com", false, 1994, time.December, 19),
		seedUser(10, "Johnny", "Blaze", "jblaze@example.com", true, 1990, time.March, 28),
		seedUser(11, "Robin", "Feld", "rfeld@example.com", true, 1995, time.July, 20),
	}
}

func seedUser(id int64, forename, surname, email string, active bool, year int, month time.Month, day int) User {
	dob := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return User{
		ID:          id,
		Forename:    forename,
		Surname:     surname,
		Email:       email,
		IsActive:    active,
		DateOfBirth: &dob,
	}
}
