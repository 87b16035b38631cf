package routes

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/chapterly/api/internal/models"
)

func TestHandleCreateMember(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		expectedCode int
	}{
		{
			name:         "should return 400 if name is missing",
			body:         map[string]string{"role": "admin"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "should return 400 if name is empty",
			body:         map[string]string{"name": ""},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "should create a member with only a name",
			body:         map[string]string{"name": "Ada"},
			expectedCode: http.StatusOK,
		},
		{
			name: "should create a member with every field",
			body: map[string]string{
				"name": "Ada", "role": "host", "team": "sci-fi", "email": "ada@example.com",
				"location": "London", "joinDate": "2024-01-01", "photoUrl": "https://example.com/a.png",
				"status": "active",
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, db := newTestServer(t, &fakeVerifier{}, &fakeCatalog{})

			rr := serveJSON(t, s, http.MethodPost, "/members", tt.body)

			if rr.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedCode, rr.Code, rr.Body.String())
			}

			if tt.expectedCode != http.StatusOK {
				members, err := db.ListMembers(context.Background())

				if err != nil {
					t.Fatalf("error listing members: %v", err)
				}

				if len(members) != 0 {
					t.Errorf("expected no member rows after rejected create, got %d", len(members))
				}

				return
			}

			created := decodeBody[models.HandleCreateResponse](t, rr)

			if created.Id == 0 || created.Changes != 1 {
				t.Errorf("unexpected create response %+v", created)
			}
		})
	}
}

func TestHandleCreateMemberDefaultsOptionalFields(t *testing.T) {
	s, _ := newTestServer(t, &fakeVerifier{}, &fakeCatalog{})

	rr := serveJSON(t, s, http.MethodPost, "/members", map[string]string{"name": "Ada"})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	created := decodeBody[models.HandleCreateResponse](t, rr)

	rr = serveJSON(t, s, http.MethodGet, fmt.Sprintf("/local-members/%d", created.Id), nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	member := decodeBody[models.Member](t, rr)

	if member.Name != "Ada" {
		t.Errorf("expected name to round-trip, got %q", member.Name)
	}

	if member.Role != "" || member.Team != "" || member.Email != "" || member.Location != "" ||
		member.JoinDate != "" || member.Status != "" {
		t.Errorf("expected unset optional fields to be empty strings, got %+v", member)
	}
}

func TestHandleGetMembers(t *testing.T) {
	s, db := newTestServer(t, &fakeVerifier{}, &fakeCatalog{})

	seedMember(t, db, "one")
	seedMember(t, db, "two")

	rr := serveJSON(t, s, http.MethodGet, "/members", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	members := decodeBody[[]models.Member](t, rr)

	if len(members) != 2 {
		t.Errorf("expected 2 members, got %d", len(members))
	}
}

func TestHandleGetMemberByFirebaseUid(t *testing.T) {
	s, db := newTestServer(t, &fakeVerifier{}, &fakeCatalog{})

	uid := "uid-abc"

	if _, err := db.CreateMember(context.Background(), &models.Member{Name: "Ada", FirebaseUid: &uid}); err != nil {
		t.Fatalf("error seeding member: %v", err)
	}

	rr := serveJSON(t, s, http.MethodGet, "/members/uid-abc", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	member := decodeBody[models.Member](t, rr)

	if member.Name != "Ada" {
		t.Errorf("unexpected member %+v", member)
	}

	rr = serveJSON(t, s, http.MethodGet, "/members/missing-uid", nil)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for unknown uid, got %d", rr.Code)
	}
}

func TestHandleGetMemberById(t *testing.T) {
	s, db := newTestServer(t, &fakeVerifier{}, &fakeCatalog{})

	id := seedMember(t, db, "Ada")

	rr := serveJSON(t, s, http.MethodGet, fmt.Sprintf("/local-members/%d", id), nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	rr = serveJSON(t, s, http.MethodGet, "/local-members/999", nil)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for unknown id, got %d", rr.Code)
	}

	rr = serveJSON(t, s, http.MethodGet, "/local-members/not-a-number", nil)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for malformed id, got %d", rr.Code)
	}
}
