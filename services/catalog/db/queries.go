package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type Event struct {
	ID          int64
	EventID     string
	Title       string
	Description string
	Date        string
	Region      string
	Category    string
	Price       float64
	MaxCapacity int64
	Location    string
	Url         string
	Image       string
	Source      string
	CreatedAt   int64
}

type CreateEventParams struct {
	EventID     string
	Title       string
	Description string
	Date        string
	Region      string
	Category    string
	Price       float64
	MaxCapacity int64
	Location    string
	Url         string
	Image       string
	Source      string
}

const createEvent = `
INSERT INTO events (
    event_id, title, description, date, region, category,
    price, max_capacity, location, url, image, source
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	_, err := q.db.ExecContext(ctx, createEvent,
		arg.EventID,
		arg.Title,
		arg.Description,
		arg.Date,
		arg.Region,
		arg.Category,
		arg.Price,
		arg.MaxCapacity,
		arg.Location,
		arg.Url,
		arg.Image,
		arg.Source,
	)
	return err
}

const getEventByUrl = `
SELECT id, event_id, title, description, date, region, category,
       price, max_capacity, location, url, image, source, created_at
FROM events
WHERE url = ?
`

func (q *Queries) GetEventByUrl(ctx context.Context, url string) (Event, error) {
	row := q.db.QueryRowContext(ctx, getEventByUrl, url)
	var e Event
	err := row.Scan(
		&e.ID,
		&e.EventID,
		&e.Title,
		&e.Description,
		&e.Date,
		&e.Region,
		&e.Category,
		&e.Price,
		&e.MaxCapacity,
		&e.Location,
		&e.Url,
		&e.Image,
		&e.Source,
		&e.CreatedAt,
	)
	return e, err
}

const listEvents = `
SELECT id, event_id, title, description, date, region, category,
       price, max_capacity, location, url, image, source, created_at
FROM events
ORDER BY id
`

func (q *Queries) ListEvents(ctx context.Context) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, listEvents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		err := rows.Scan(
			&e.ID,
			&e.EventID,
			&e.Title,
			&e.Description,
			&e.Date,
			&e.Region,
			&e.Category,
			&e.Price,
			&e.MaxCapacity,
			&e.Location,
			&e.Url,
			&e.Image,
			&e.Source,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

const countEvents = `SELECT COUNT(*) FROM events`

func (q *Queries) CountEvents(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countEvents)
	var count int64
	err := row.Scan(&count)
	return count, err
}

type Deal struct {
	ID              int64
	DealID          string
	Title           string
	Description     string
	Price           float64
	DiscountPercent float64
	Url             string
	Source          string
	CreatedAt       int64
}

type CreateDealParams struct {
	DealID          string
	Title           string
	Description     string
	Price           float64
	DiscountPercent float64
	Url             string
	Source          string
}

const createDeal = `
INSERT INTO deals (
    deal_id, title, description, price, discount_percent, url, source
) VALUES (?, ?, ?, ?, ?, ?, ?)
`

func (q *Queries) CreateDeal(ctx context.Context, arg CreateDealParams) error {
	_, err := q.db.ExecContext(ctx, createDeal,
		arg.DealID,
		arg.Title,
		arg.Description,
		arg.Price,
		arg.DiscountPercent,
		arg.Url,
		arg.Source,
	)
	return err
}

const getDealByUrl = `
SELECT id, deal_id, title, description, price, discount_percent, url, source, created_at
FROM deals
WHERE url = ?
`

func (q *Queries) GetDealByUrl(ctx context.Context, url string) (Deal, error) {
	row := q.db.QueryRowContext(ctx, getDealByUrl, url)
	var d Deal
	err := row.Scan(
		&d.ID,
		&d.DealID,
		&d.Title,
		&d.Description,
		&d.Price,
		&d.DiscountPercent,
		&d.Url,
		&d.Source,
		&d.CreatedAt,
	)
	return d, err
}
