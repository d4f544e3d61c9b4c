package dtos

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EditDivisionDto struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

func (d *EditDivisionDto) GetID() uuid.UUID { return d.ID }

func (d *EditDivisionDto) GetLastUpdated() *time.Time { return d.LastUpdated }

type EditSeasonDto struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	DivisionIDs []uuid.UUID `json:"divisionIds"`
	LastUpdated *time.Time  `json:"lastUpdated,omitempty"`
}

func (d *EditSeasonDto) GetID() uuid.UUID { return d.ID }

func (d *EditSeasonDto) GetLastUpdated() *time.Time { return d.LastUpdated }

type EditTeamDto struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	DivisionID  uuid.UUID  `json:"divisionId"`
	SeasonID    uuid.UUID  `json:"seasonId"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

func (d *EditTeamDto) GetID() uuid.UUID { return d.ID }

func (d *EditTeamDto) GetLastUpdated() *time.Time { return d.LastUpdated }

type EditGameDto struct {
	ID          uuid.UUID  `json:"id"`
	SeasonID    uuid.UUID  `json:"seasonId"`
	DivisionID  uuid.UUID  `json:"divisionId"`
	Date        time.Time  `json:"date"`
	HomeTeamID  uuid.UUID  `json:"homeTeamId"`
	AwayTeamID  uuid.UUID  `json:"awayTeamId"`
	Address     string     `json:"address"`
	Postponed   bool       `json:"postponed"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

func (d *EditGameDto) GetID() uuid.UUID { return d.ID }

func (d *EditGameDto) GetLastUpdated() *time.Time { return d.LastUpdated }

type EditFixtureDateNoteDto struct {
	ID          uuid.UUID  `json:"id"`
	Date        time.Time  `json:"date"`
	Note        string     `json:"note"`
	SeasonID    uuid.UUID  `json:"seasonId"`
	DivisionID  *uuid.UUID `json:"divisionId,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

func (d *EditFixtureDateNoteDto) GetID() uuid.UUID { return d.ID }

func (d *EditFixtureDateNoteDto) GetLastUpdated() *time.Time { return d.LastUpdated }

type AddErrorDetailDto struct {
	ID        uuid.UUID       `json:"id"`
	Source    string          `json:"source"`
	Time      time.Time       `json:"time"`
	Message   string          `json:"message"`
	Stack     json.RawMessage `json:"stack,omitempty"`
	Type      string          `json:"type,omitempty"`
	UserName  string          `json:"userName,omitempty"`
	UserAgent string          `json:"userAgent,omitempty"`
	URL       string          `json:"url,omitempty"`
	// Error reports are add-only; the token is carried for uniformity.
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

func (d *AddErrorDetailDto) GetID() uuid.UUID { return d.ID }

func (d *AddErrorDetailDto) GetLastUpdated() *time.Time { return d.LastUpdated }

type UpdateRecordedScoreAsYouGoDto struct {
	ID            uuid.UUID       `json:"id"`
	YourName      string          `json:"yourName"`
	OpponentName  string          `json:"opponentName,omitempty"`
	StartingScore int             `json:"startingScore"`
	NumberOfLegs  int             `json:"numberOfLegs"`
	HomeScore     *int            `json:"homeScore,omitempty"`
	AwayScore     *int            `json:"awayScore,omitempty"`
	Legs          json.RawMessage `json:"legs,omitempty"`
	LastUpdated   *time.Time      `json:"lastUpdated,omitempty"`
}

func (d *UpdateRecordedScoreAsYouGoDto) GetID() uuid.UUID { return d.ID }

func (d *UpdateRecordedScoreAsYouGoDto) GetLastUpdated() *time.Time { return d.LastUpdated }
