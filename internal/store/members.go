package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chapterly/api/internal/models"
)

var (
	ErrMemberNotFound = errors.New("member not found")
)

func scanMember(row interface{ Scan(...any) error }) (*models.Member, error) {
	var member models.Member
	var firebaseUid sql.NullString
	var photoUrl sql.NullString

	if err := row.Scan(
		&member.Id,
		&firebaseUid,
		&member.Name,
		&member.Email,
		&photoUrl,
		&member.Role,
		&member.Team,
		&member.Location,
		&member.JoinDate,
		&member.Status,
	); err != nil {
		return nil, err
	}

	if firebaseUid.Valid {
		member.FirebaseUid = &firebaseUid.String
	}

	if photoUrl.Valid {
		member.PhotoUrl = &photoUrl.String
	}

	return &member, nil
}

func (s *SQLiteStore) ListMembers(ctx context.Context) ([]models.Member, error) {
	query := `
			SELECT id, firebaseUid, name, email, photoUrl, role, team, location, joinDate, status
			FROM members ORDER BY id;
	`

	rows, err := s.DB.QueryContext(ctx, query)

	if err != nil {
		return nil, fmt.Errorf("error querying members table: %v", err)
	}

	defer rows.Close()

	members := []models.Member{}

	for rows.Next() {
		member, err := scanMember(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning member: %v", err)
		}

		members = append(members, *member)
	}

	return members, rows.Err()
}

func (s *SQLiteStore) GetMemberById(ctx context.Context, id int64) (*models.Member, error) {
	query := `
			SELECT id, firebaseUid, name, email, photoUrl, role, team, location, joinDate, status
			FROM members WHERE id = ?;
	`

	member, err := scanMember(s.DB.QueryRowContext(ctx, query, id))

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMemberNotFound
		}

		return nil, fmt.Errorf("error querying members table: %v", err)
	}

	return member, nil
}

func (s *SQLiteStore) GetMemberByFirebaseUid(ctx context.Context, uid string) (*models.Member, error) {
	query := `
			SELECT id, firebaseUid, name, email, photoUrl, role, team, location, joinDate, status
			FROM members WHERE firebaseUid = ?;
	`

	member, err := scanMember(s.DB.QueryRowContext(ctx, query, uid))

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMemberNotFound
		}

		return nil, fmt.Errorf("error querying members table: %v", err)
	}

	return member, nil
}

func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) (int64, error) {
	query := `
			INSERT INTO members (firebaseUid, name, email, photoUrl, role, team, location, joinDate, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	var firebaseUid any
	if member.FirebaseUid != nil {
		firebaseUid = *member.FirebaseUid
	}

	var photoUrl any
	if member.PhotoUrl != nil {
		photoUrl = *member.PhotoUrl
	}

	result, err := s.DB.ExecContext(ctx, query,
		firebaseUid,
		member.Name,
		member.Email,
		photoUrl,
		member.Role,
		member.Team,
		member.Location,
		member.JoinDate,
		member.Status,
	)

	if err != nil {
		return 0, fmt.Errorf("error inserting in members table: %v", err)
	}

	id, err := result.LastInsertId()

	if err != nil {
		return 0, fmt.Errorf("error retrieving member id: %v", err)
	}

	return id, nil
}
