package guide

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"infoslide/src/kv"
)

// NotesKey is the store key holding the JSON array of notes.
const NotesKey = "visualization_memos"

const dateLayout = "2006-01-02"

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrUnknownStage = errors.New("unknown training stage")
	ErrEmptyNote    = errors.New("note content is empty")
)

type Note struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Stage   string `json:"stage"`
	Content string `json:"content"`
}

func (n Note) Label() string {
	return n.Date + " - " + n.Stage
}

// Notebook keeps training notes in a kv.Store under NotesKey.
type Notebook struct {
	store kv.Store
}

func NewNotebook(store kv.Store) *Notebook {
	return &Notebook{store: store}
}

func (nb *Notebook) Add(date time.Time, stage, content string) (Note, error) {
	if !IsStage(stage) {
		return Note{}, fmt.Errorf("%w: %s", ErrUnknownStage, stage)
	}
	if strings.TrimSpace(content) == "" {
		return Note{}, ErrEmptyNote
	}

	notes, err := nb.load()
	if err != nil {
		return Note{}, err
	}

	note := Note{
		ID:      uuid.NewString(),
		Date:    date.Format(dateLayout),
		Stage:   stage,
		Content: content,
	}
	notes = append(notes, note)
	if err := nb.save(notes); err != nil {
		return Note{}, err
	}
	return note, nil
}

// All returns every note, newest date first.
func (nb *Notebook) All() ([]Note, error) {
	notes, err := nb.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Date > notes[j].Date
	})
	return notes, nil
}

// OnDate returns the notes written for one day, in the order they were added.
func (nb *Notebook) OnDate(date time.Time) ([]Note, error) {
	notes, err := nb.load()
	if err != nil {
		return nil, err
	}
	day := date.Format(dateLayout)
	var out []Note
	for _, n := range notes {
		if n.Date == day {
			out = append(out, n)
		}
	}
	return out, nil
}

func (nb *Notebook) Delete(id string) error {
	notes, err := nb.load()
	if err != nil {
		return err
	}
	for i, n := range notes {
		if n.ID == id {
			notes = append(notes[:i], notes[i+1:]...)
			return nb.save(notes)
		}
	}
	return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
}

func (nb *Notebook) Clear() error {
	return nb.store.Delete(NotesKey)
}

func (nb *Notebook) load() ([]Note, error) {
	raw, ok, err := nb.store.Get(NotesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var notes []Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

func (nb *Notebook) save(notes []Note) error {
	if notes == nil {
		notes = []Note{}
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	return nb.store.Set(NotesKey, raw)
}
