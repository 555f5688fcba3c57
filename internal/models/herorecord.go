package models

import "time"

// Author is the Telegram user who confirmed a record.
type Author struct {
	ID         int64  `db:"id"`
	TelegramID int64  `db:"telegram_id"`
	Username   string `db:"username"`
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
}

// HeroRecord is the durable entity created once all answers are confirmed.
// It is immutable after creation.
type HeroRecord struct {
	ID                       int64     `db:"id"`
	CaseID                   int64     `db:"case_id"`
	HeroLastName             string    `db:"hero_last_name"`
	HeroFirstName            string    `db:"hero_first_name"`
	HeroPatronymic           string    `db:"hero_patronymic"`
	HeroDateOfBirth          time.Time `db:"hero_date_of_birth"`
	ItemUsedForDNAExtraction string    `db:"item_used_for_dna_extraction"`
	RelativeLastName         string    `db:"relative_last_name"`
	RelativeFirstName        string    `db:"relative_first_name"`
	RelativePatronymic       string    `db:"relative_patronymic"`
	IsAddedToDNADB           bool      `db:"is_added_to_dna_db"`
	Comment                  string    `db:"comment"`
	CreatedAt                time.Time `db:"created_at"`
	AuthorID                 int64     `db:"author_id"`
}
