package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Kub1991/4sciana/internal/domain"
)

// Store implements domain.ThreadStore on Firestore, for deployments where
// the local gateway's threads should survive a restart.
type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore thread store.
// Uses the project passed (CHAT_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) threadsCol() *firestore.CollectionRef {
	return s.client.Collection("threads")
}

func (s *Store) threadDoc(id domain.ThreadID) *firestore.DocumentRef {
	return s.threadsCol().Doc(string(id))
}

func (s *Store) messagesCol(id domain.ThreadID) *firestore.CollectionRef {
	return s.threadDoc(id).Collection("messages")
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type threadDoc struct {
	CreatedAt time.Time `firestore:"created_at"`
}

type messageDoc struct {
	Role      string    `firestore:"role"`
	Text      string    `firestore:"text"`
	CreatedAt time.Time `firestore:"created_at"`
}

// ─────────────────────────────────────────
// ThreadStore implementation
// ─────────────────────────────────────────

func (s *Store) CreateThread(ctx context.Context, id domain.ThreadID, createdAt domain.Timestamp) error {
	_, err := s.threadDoc(id).Create(ctx, threadDoc{CreatedAt: createdAt})
	if err != nil {
		return fmt.Errorf("firestore CreateThread: %w", err)
	}
	return nil
}

func (s *Store) AppendThreadMessage(ctx context.Context, id domain.ThreadID, msg domain.ThreadMessage) error {
	if _, err := s.threadDoc(id).Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrThreadNotFound
		}
		return fmt.Errorf("firestore AppendThreadMessage: %w", err)
	}

	doc := messageDoc{
		Role:      string(msg.Role),
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}

	_, err := s.messagesCol(id).Doc(msg.ID).Set(ctx, doc)
	if err != nil {
		return fmt.Errorf("firestore AppendThreadMessage: %w", err)
	}
	return nil
}

func (s *Store) ListThreadMessages(ctx context.Context, id domain.ThreadID) ([]domain.ThreadMessage, error) {
	if _, err := s.threadDoc(id).Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrThreadNotFound
		}
		return nil, fmt.Errorf("firestore ListThreadMessages: %w", err)
	}

	q := s.messagesCol(id).OrderBy("created_at", firestore.Asc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []domain.ThreadMessage
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListThreadMessages: %w", err)
		}

		var doc messageDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode messageDoc: %w", err)
		}

		out = append(out, domain.ThreadMessage{
			ID:        snap.Ref.ID,
			Role:      domain.Role(doc.Role),
			Text:      doc.Text,
			CreatedAt: doc.CreatedAt,
		})
	}
	return out, nil
}
