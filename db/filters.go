package db

import "database/sql"

// SetFilter stores the author filter for a user, replacing any previous one.
func SetFilter(userID, author string) error {
	_, err := DB.Exec(
		"INSERT INTO user_filters(user_id, author_filter) VALUES(?, ?) ON CONFLICT(user_id) DO UPDATE SET author_filter = excluded.author_filter",
		userID, author,
	)
	return err
}

// GetFilter returns the author filter for a user, or "" if none is set.
func GetFilter(userID string) (string, error) {
	var author string
	err := DB.QueryRow("SELECT author_filter FROM user_filters WHERE user_id = ?", userID).Scan(&author)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return author, nil
}

// ClearFilter removes the author filter for a user.
func ClearFilter(userID string) error {
	_, err := DB.Exec("DELETE FROM user_filters WHERE user_id = ?", userID)
	return err
}
