package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/scavara/statusquo/model"
)

// rowScanner is an interface that can be satisfied by *sql.Row or *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanQuote scans a row into a Quote struct.
func scanQuote(scanner rowScanner) (*model.Quote, error) {
	var q model.Quote
	err := scanner.Scan(&q.ID, &q.Text, &q.Author, &q.Emoji, &q.ProposerID, &q.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Return nil, nil if no quote is found
		}
		return nil, err
	}
	return &q, nil
}

const quoteColumns = `id, text, COALESCE(author, '') as author, emoji,
		COALESCE(proposer_id, '') as proposer_id, created_at`

// AddQuote inserts a new quote and returns its generated ID.
func AddQuote(text, author, emoji, proposerID string) (string, error) {
	id := uuid.New().String()
	_, err := DB.Exec(
		"INSERT INTO quotes(id, text, author, emoji, proposer_id, created_at) VALUES(?, ?, ?, ?, ?, ?)",
		id, text, author, emoji, proposerID, time.Now().Unix(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// RandomQuote returns a uniformly random quote, or nil if the table is empty.
func RandomQuote() (*model.Quote, error) {
	row := DB.QueryRow("SELECT " + quoteColumns + " FROM quotes ORDER BY RANDOM() LIMIT 1")
	return scanQuote(row)
}

// RandomQuoteByAuthor returns a random quote whose author contains the
// given fragment, or nil if none match.
func RandomQuoteByAuthor(author string) (*model.Quote, error) {
	row := DB.QueryRow(
		"SELECT "+quoteColumns+" FROM quotes WHERE author LIKE ? ORDER BY RANDOM() LIMIT 1",
		"%"+author+"%",
	)
	return scanQuote(row)
}

// GetQuoteByText returns the quote with exactly this text, or nil.
// Used for deduplication before accepting a submission.
func GetQuoteByText(text string) (*model.Quote, error) {
	row := DB.QueryRow("SELECT "+quoteColumns+" FROM quotes WHERE text = ?", text)
	return scanQuote(row)
}

// SearchQuotes returns quotes whose text contains the query, newest first.
func SearchQuotes(query string, limit int) ([]*model.Quote, error) {
	rows, err := DB.Query(
		"SELECT "+quoteColumns+" FROM quotes WHERE text LIKE ? ORDER BY created_at DESC LIMIT ?",
		"%"+query+"%", limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []*model.Quote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		if quote != nil {
			quotes = append(quotes, quote)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}

// CountQuotesByAuthor returns how many quotes match an author fragment.
func CountQuotesByAuthor(author string) (int, error) {
	var count int
	err := DB.QueryRow(
		"SELECT COUNT(*) FROM quotes WHERE author LIKE ?", "%"+author+"%",
	).Scan(&count)
	return count, err
}
