package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/guru01092001/skills-getting-started-with-github-copilot/internal/adapters/http/api"
	"github.com/guru01092001/skills-getting-started-with-github-copilot/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing

type mockDirectory struct {
	activities map[string]api.Activity
	signupErr  error
	removeErr  error

	lastActivity string
	lastEmail    string
}

func (m *mockDirectory) List(_ context.Context) map[string]api.Activity {
	return m.activities
}

func (m *mockDirectory) Signup(_ context.Context, activity, email string) (string, error) {
	m.lastActivity, m.lastEmail = activity, email
	if m.signupErr != nil {
		return "", m.signupErr
	}
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

func (m *mockDirectory) Unregister(_ context.Context, activity, email string) (string, error) {
	m.lastActivity, m.lastEmail = activity, email
	if m.removeErr != nil {
		return "", m.removeErr
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newTestMux(deps api.Dependencies, stats api.StatsProvider) *http.ServeMux {
	server := api.NewServer(deps, stats)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func defaultMock() *mockDirectory {
	return &mockDirectory{
		activities: map[string]api.Activity{
			"Chess Club": {
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"player@mergington.edu"},
			},
		},
	}
}

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := defaultMock()
		mux := newTestMux(deps, &mockStatsProvider{stats: map[string]interface{}{"started": true}})

		Convey("Then the health endpoint should be accessible", func() {
			req := httptest.NewRequest("GET", "/healthz", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("And the stats endpoint should return JSON", func() {
			req := httptest.NewRequest("GET", "/stats", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")

			var stats map[string]interface{}
			So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)
			So(stats["started"], ShouldEqual, true)
		})

		Convey("And wrong methods should not match", func() {
			req := httptest.NewRequest("DELETE", "/activities", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})
	})
}

func TestActivitiesHandler(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := defaultMock()
		mux := newTestMux(deps, &mockStatsProvider{})

		Convey("When fetching the directory", func() {
			req := httptest.NewRequest("GET", "/activities", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 200 with the JSON mapping", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")

				var directory map[string]api.Activity
				So(json.Unmarshal(w.Body.Bytes(), &directory), ShouldBeNil)
				So(directory, ShouldContainKey, "Chess Club")
				So(directory["Chess Club"].MaxParticipants, ShouldEqual, 12)
				So(directory["Chess Club"].Participants, ShouldResemble, []string{"player@mergington.edu"})
			})
		})
	})
}

func TestSignupHandler(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := defaultMock()
		mux := newTestMux(deps, &mockStatsProvider{})

		Convey("When signing up with a URL-encoded activity name", func() {
			req := httptest.NewRequest("POST", "/activities/Chess%20Club/signup?email=test@mergington.edu", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 200 with the confirmation message", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var body map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["message"], ShouldEqual, "Signed up test@mergington.edu for Chess Club")
			})

			Convey("And the path segment should be decoded before reaching the service", func() {
				So(deps.lastActivity, ShouldEqual, "Chess Club")
				So(deps.lastEmail, ShouldEqual, "test@mergington.edu")
			})
		})

		Convey("When the activity does not exist", func() {
			deps.signupErr = repository.ErrActivityNotFound
			req := httptest.NewRequest("POST", "/activities/Nonexistent%20Activity/signup?email=test@mergington.edu", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 404 with the detail envelope", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)

				var body map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["detail"], ShouldEqual, "Activity not found")
			})
		})

		Convey("When the student is already signed up", func() {
			deps.signupErr = repository.ErrAlreadyRegistered
			req := httptest.NewRequest("POST", "/activities/Chess%20Club/signup?email=player@mergington.edu", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 400 with the detail envelope", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var body map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["detail"], ShouldEqual, "Student is already signed up")
			})
		})

		Convey("When the email parameter is missing", func() {
			req := httptest.NewRequest("POST", "/activities/Chess%20Club/signup", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 400 without calling the service", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(deps.lastEmail, ShouldBeBlank)

				var body map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["detail"], ShouldEqual, "email is required")
			})
		})

		Convey("When using GET on the signup route", func() {
			req := httptest.NewRequest("GET", "/activities/Chess%20Club/signup?email=x@mergington.edu", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the mux should reject the method", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			})
		})
	})
}

func TestUnregisterHandler(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := defaultMock()
		mux := newTestMux(deps, &mockStatsProvider{})

		Convey("When unregistering a registered student", func() {
			req := httptest.NewRequest("POST", "/activities/Gym%20Class/unregister?email=gym@mergington.edu", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 200 with the confirmation message", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var body map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["message"], ShouldEqual, "Unregistered gym@mergington.edu from Gym Class")
			})
		})

		Convey("When the activity does not exist", func() {
			deps.removeErr = repository.ErrActivityNotFound
			req := httptest.NewRequest("POST", "/activities/Nonexistent%20Activity/unregister?email=x@mergington.edu", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the student never signed up", func() {
			deps.removeErr = repository.ErrNotRegistered
			req := httptest.NewRequest("POST", "/activities/Gym%20Class/unregister?email=stranger@mergington.edu", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 400 with the detail envelope", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var body map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["detail"], ShouldEqual, "Student is not registered for this activity")
			})
		})
	})
}
