package misc

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

type PhraseKind string

const (
	KindMotivation PhraseKind = "motivation"
	KindJoke       PhraseKind = "joke"
)

type Phrase struct {
	Text string     `json:"text"`
	Kind PhraseKind `json:"kind"`
}

var ErrNoPhrases = errors.New("no phrases of that kind")

type PhrasesManager struct {
	Phrases     []*Phrase
	KindPhrases map[PhraseKind][]*Phrase
}

// NewPhrasesManager reads TEXT;KIND records.
func NewPhrasesManager(phrasesCsvReader *csv.Reader) (*PhrasesManager, error) {
	pm := &PhrasesManager{
		KindPhrases: make(map[PhraseKind][]*Phrase),
	}

	log.Println("reading phrases CSV ...")

	phrasesCsvReader.Comma = ';'
	for {
		record, err := phrasesCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 2 {
			return nil, fmt.Errorf("record [%s] does not have 2 elements", record)
		}

		kind := PhraseKind(record[1])
		if kind != KindMotivation && kind != KindJoke {
			return nil, fmt.Errorf("record [%s] has unknown kind", record)
		}

		phrase := &Phrase{
			Text: record[0],
			Kind: kind,
		}
		pm.Phrases = append(pm.Phrases, phrase)
		pm.KindPhrases[kind] = append(pm.KindPhrases[kind], phrase)
	}

	log.Printf("phrases CSV read %d phrases", len(pm.Phrases))

	return pm, nil
}

func (pm *PhrasesManager) Random(kind PhraseKind) (*Phrase, error) {
	phrases := pm.KindPhrases[kind]
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	return phrases[rand.Intn(len(phrases))], nil
}

func (pm *PhrasesManager) RandomMotivation() (*Phrase, error) {
	return pm.Random(KindMotivation)
}

func (pm *PhrasesManager) RandomJoke() (*Phrase, error) {
	return pm.Random(KindJoke)
}
