package feedback

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment is too long")
)

const MaxCommentLength = 1000

// Feedback is a guest's rating of a completed stay.
type Feedback struct {
	id        uuid.UUID
	userID    uuid.UUID
	packageID uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewFeedback(id, userID, packageID uuid.UUID, rating int, comment string, now time.Time) (*Feedback, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}

	r, err := NewRating(rating)
	if err != nil {
		return nil, err
	}

	c, err := NewComment(comment)
	if err != nil {
		return nil, err
	}

	return &Feedback{
		id:        id,
		userID:    userID,
		packageID: packageID,
		rating:    r,
		comment:   c,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructFeedback(id, userID, packageID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Feedback {
	return &Feedback{
		id:        id,
		userID:    userID,
		packageID: packageID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (f *Feedback) ID() uuid.UUID        { return f.id }
func (f *Feedback) UserID() uuid.UUID    { return f.userID }
func (f *Feedback) PackageID() uuid.UUID { return f.packageID }
func (f *Feedback) Rating() Rating       { return f.rating }
func (f *Feedback) Comment() Comment     { return f.comment }
func (f *Feedback) CreatedAt() time.Time { return f.createdAt }
func (f *Feedback) UpdatedAt() time.Time { return f.updatedAt }

type Rating struct {
	value int
}

func NewRating(value int) (Rating, error) {
	if value < 1 || value > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: value}, nil
}

func (r Rating) Value() int {
	return r.value
}

type Comment struct {
	value string
}

func NewComment(value string) (Comment, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(value) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: value}, nil
}

func (c Comment) String() string {
	return c.value
}
