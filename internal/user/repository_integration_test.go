package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ferdiebergado/inflowkit/internal/platform/db"
	"github.com/ferdiebergado/inflowkit/internal/user"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const querySeedUsers = `
INSERT INTO users (id, email, password_hash, created_at, updated_at) VALUES
(
	'f47ac10b-58cc-4372-a567-0e02b2c3d479',
	'alice@inflowkit.test',
	'$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g',
	'2025-05-09T10:00:00Z',
	'2025-05-09T10:00:00Z'
),
(
	'3d594650-3436-11e5-bf21-0800200c9a67',
	'bobby@inflowkit.test',
	'$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g',
	'2025-05-09T10:05:00Z',
	'2025-05-09T10:05:00Z'
);
`

func TestIntegrationRepository_CreateUser(t *testing.T) {
	t.Parallel()

	conn, tx := db.Setup(t)

	txCtx := db.NewContextWithTx(context.Background(), tx)
	repo := user.NewRepository(conn)

	created, err := repo.Create(txCtx, user.CreateUserParams{
		Email:        "carol@inflowkit.test",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
	})
	if err != nil {
		t.Fatalf("repo.Create() error = %v", err)
	}

	if created.ID == "" {
		t.Error("created.ID is empty, want a generated uuid")
	}

	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("created timestamps are zero, want the inserted values")
	}
}

func TestIntegrationRepository_FindUserByEmail(t *testing.T) {
	t.Parallel()

	conn, tx := db.Setup(t)

	if _, err := tx.Exec(querySeedUsers); err != nil {
		t.Fatal(err)
	}

	txCtx := db.NewContextWithTx(context.Background(), tx)
	repo := user.NewRepository(conn)

	const testEmail = "alice@inflowkit.test"
	u, err := repo.FindByEmail(txCtx, testEmail)
	if err != nil {
		t.Fatalf("repo.FindByEmail() error = %v", err)
	}

	if got, want := u.ID, "f47ac10b-58cc-4372-a567-0e02b2c3d479"; got != want {
		t.Errorf("u.ID = %q, want: %q", got, want)
	}

	if u.PasswordHash == "" {
		t.Error("u.PasswordHash is empty, want the stored hash")
	}

	if _, err := repo.FindByEmail(txCtx, "nobody@inflowkit.test"); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("repo.FindByEmail() error = %v, want: %v", err, user.ErrNotFound)
	}
}

func TestIntegrationRepository_FindUser(t *testing.T) {
	t.Parallel()

	conn, tx := db.Setup(t)

	if _, err := tx.Exec(querySeedUsers); err != nil {
		t.Fatal(err)
	}

	txCtx := db.NewContextWithTx(context.Background(), tx)
	repo := user.NewRepository(conn)

	const userID = "3d594650-3436-11e5-bf21-0800200c9a67"
	u, err := repo.Find(txCtx, userID)
	if err != nil {
		t.Fatalf("repo.Find() error = %v", err)
	}

	if got, want := u.Email, "bobby@inflowkit.test"; got != want {
		t.Errorf("u.Email = %q, want: %q", got, want)
	}
}

func TestIntegrationRepository_ListUsers(t *testing.T) {
	t.Parallel()

	conn, tx := db.Setup(t)

	if _, err := tx.Exec(querySeedUsers); err != nil {
		t.Fatal(err)
	}

	row := tx.QueryRow("SELECT COUNT(*) FROM users")
	var numUsers int
	if err := row.Scan(&numUsers); err != nil {
		t.Fatal(err)
	}

	txCtx := db.NewContextWithTx(context.Background(), tx)
	svc := user.NewService(user.NewRepository(conn))

	users, err := svc.ListUsers(txCtx)
	if err != nil {
		t.Fatalf("svc.ListUsers() error = %v", err)
	}

	if got, want := len(users), numUsers; got != want {
		t.Errorf("len(users) = %d, want: %d", got, want)
	}
}
