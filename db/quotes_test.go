package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndRandomQuote(t *testing.T) {
	setupDB(t)

	quote, err := RandomQuote()
	require.NoError(t, err)
	assert.Nil(t, quote, "empty store should yield no quote")

	id, err := AddQuote("Coding hard", "Anonymous", ":computer:", "U1")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	quote, err = RandomQuote()
	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Equal(t, "Coding hard", quote.Text)
	assert.Equal(t, ":computer:", quote.Emoji)
}

func TestRandomQuoteByAuthor(t *testing.T) {
	setupDB(t)

	_, err := AddQuote("one", "Yoda", ":star:", "U1")
	require.NoError(t, err)
	_, err = AddQuote("two", "Kermit", ":frog:", "U1")
	require.NoError(t, err)

	quote, err := RandomQuoteByAuthor("yod")
	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Equal(t, "Yoda", quote.Author)

	quote, err = RandomQuoteByAuthor("nobody")
	require.NoError(t, err)
	assert.Nil(t, quote)
}

func TestGetQuoteByText(t *testing.T) {
	setupDB(t)

	_, err := AddQuote("Exact match", "A", ":wave:", "U1")
	require.NoError(t, err)

	quote, err := GetQuoteByText("Exact match")
	require.NoError(t, err)
	require.NotNil(t, quote)

	quote, err = GetQuoteByText("exact match")
	require.NoError(t, err)
	assert.Nil(t, quote, "dedup match is case sensitive")
}

func TestSearchQuotes(t *testing.T) {
	setupDB(t)

	_, err := AddQuote("I love coffee", "A", ":coffee:", "U1")
	require.NoError(t, err)
	_, err = AddQuote("Tea time", "B", ":tea:", "U1")
	require.NoError(t, err)

	quotes, err := SearchQuotes("coffee", 10)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "I love coffee", quotes[0].Text)

	quotes, err = SearchQuotes("juice", 10)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestCountQuotesByAuthor(t *testing.T) {
	setupDB(t)

	_, err := AddQuote("one", "Yoda", ":star:", "U1")
	require.NoError(t, err)
	_, err = AddQuote("two", "Yoda", ":star:", "U1")
	require.NoError(t, err)

	count, err := CountQuotesByAuthor("Yoda")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = CountQuotesByAuthor("Kermit")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
