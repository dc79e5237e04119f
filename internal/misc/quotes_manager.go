package misc

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// Quote is a motivational one-liner served on the landing endpoints
// to nudge the user towards the next workout.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Tag    string `json:"tag"`
}

type QuotesManager struct {
	Quotes    []*Quote
	TagQuotes map[string][]*Quote
}

// NewQuotesManager reads semicolon-separated records: QUOTE;AUTHOR;TAG.
func NewQuotesManager(quotesCsvReader *csv.Reader) (*QuotesManager, error) {
	qm := &QuotesManager{
		TagQuotes: make(map[string][]*Quote),
	}

	quotesCsvReader.Comma = ';'
	for {
		record, err := quotesCsvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) != 3 {
			return nil, fmt.Errorf("record [%s] does not have 3 elements", record)
		}

		quote := &Quote{
			Text:   record[0],
			Author: record[1],
			Tag:    record[2],
		}
		qm.Quotes = append(qm.Quotes, quote)
		qm.TagQuotes[quote.Tag] = append(qm.TagQuotes[quote.Tag], quote)
	}

	if len(qm.Quotes) == 0 {
		return nil, errors.New("no quotes found")
	}

	log.Printf("quotes CSV read, %d quotes", len(qm.Quotes))

	return qm, nil
}

func (qm *QuotesManager) RandomQuote() *Quote {
	return qm.Quotes[rand.Intn(len(qm.Quotes))]
}

func (qm *QuotesManager) RandomQuoteByTag(tag string) (*Quote, error) {
	quotes, ok := qm.TagQuotes[tag]
	if !ok {
		return nil, fmt.Errorf("no quotes for tag %q", tag)
	}
	return quotes[rand.Intn(len(quotes))], nil
}
