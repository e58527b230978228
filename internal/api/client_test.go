package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"tavolo/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, TokenFunc(func() string { return "tok-1" }), nil)
	return c, srv
}

func TestSignInSendsFormAndRole(t *testing.T) {
	var gotForm url.Values
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/sign_in" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("content type = %q", ct)
		}
		gotAuth = r.Header.Get("Authorization")
		r.ParseForm()
		gotForm = r.PostForm
		io.WriteString(w, `{"token":"abc","userdetails":{"_id":"u1","email":"root@example.com"}}`)
	})

	res, err := c.SignIn(context.Background(), "root@example.com", "hunter2")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if res.Token != "abc" || res.User.ID != "u1" {
		t.Errorf("got %+v", res)
	}
	if gotAuth != "" {
		t.Errorf("sign in should not send Authorization, got %q", gotAuth)
	}
	if gotForm.Get("email") != "root@example.com" || gotForm.Get("userRoleType") != "0" {
		t.Errorf("form = %v", gotForm)
	}
}

func TestSignInEmptyTokenIsError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"token":""}`)
	})
	if _, err := c.SignIn(context.Background(), "a@b.c", "x"); err == nil {
		t.Fatal("want error on empty token")
	}
}

func TestAuthorizationUsesJWTScheme(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `[]`)
	})
	if _, err := c.Tenants(context.Background()); err != nil {
		t.Fatalf("tenants: %v", err)
	}
	if gotAuth != "JWT tok-1" {
		t.Errorf("authorization = %q, want JWT tok-1", gotAuth)
	}
}

func TestTokenReadPerRequest(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	token := "first"
	c := NewClient(srv.URL, TokenFunc(func() string { return token }), nil)
	c.Tenants(context.Background())
	token = "second"
	c.Tenants(context.Background())

	if len(got) != 2 || got[0] != "JWT first" || got[1] != "JWT second" {
		t.Errorf("tokens sent = %v", got)
	}
}

func TestMissingTokenFailsBeforeSending(t *testing.T) {
	called := false
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	c.tokens = TokenFunc(func() string { return "" })
	if _, err := c.Tenants(context.Background()); !errors.Is(err, ErrNoToken) {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}
	if called {
		t.Error("request should not reach the server without a token")
	}
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
	}
	for _, tc := range cases {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		_, err := c.Tenants(context.Background())
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestUnexpectedStatusIsPlainError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	_, err := c.Tenants(context.Background())
	if err == nil || errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want a generic error", err)
	}
}

func TestRegisterTenantEncodesTableTypes(t *testing.T) {
	var gotForm url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotForm = r.PostForm
		io.WriteString(w, `{}`)
	})

	err := c.RegisterTenant(context.Background(), model.NewTenant{
		Username:       "amara",
		Email:          "amara@example.com",
		Password:       "pw",
		RestaurantName: "Amara's",
		CreatedBy:      "u1",
		TableTypes: []model.TableTypeConfig{
			{ID: "t1", Name: "Window", Status: true, NoOfTables: 4},
			{ID: "t2", Name: "Patio", Status: true, NoOfTables: 6},
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if got := gotForm.Get("tableTypes[0][name]"); got != "Window" {
		t.Errorf("tableTypes[0][name] = %q", got)
	}
	if got := gotForm.Get("tableTypes[1][noOfTables]"); got != "6" {
		t.Errorf("tableTypes[1][noOfTables] = %q", got)
	}
	if got := gotForm.Get("noOfTables"); got != "10" {
		t.Errorf("noOfTables = %q, want total 10", got)
	}
	if got := gotForm.Get("userRoleType"); got != "1" {
		t.Errorf("userRoleType = %q", got)
	}
}

func TestBookingsQueryAndDecode(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/booking/booking_list" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("restaurantId"); got != "r7" {
			t.Errorf("restaurantId = %q", got)
		}
		io.WriteString(w, `[{"_id":"b1","customerName":"Alice","status":"Pending","date":"2024-03-16"}]`)
	})

	rows, err := c.Bookings(context.Background(), "r7")
	if err != nil {
		t.Fatalf("bookings: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "b1" || rows[0].Status != "Pending" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestUpdateOrderStatusPutsForm(t *testing.T) {
	var gotMethod, gotPath string
	var gotForm url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		r.ParseForm()
		gotForm = r.PostForm
		io.WriteString(w, `{}`)
	})

	if err := c.UpdateOrderStatus(context.Background(), "o9", model.OrderDelivered); err != nil {
		t.Fatalf("update order: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/order/update_order/o9" {
		t.Errorf("got %s %s", gotMethod, gotPath)
	}
	if gotForm.Get("status") != "Delivered" {
		t.Errorf("status = %q", gotForm.Get("status"))
	}
}

func TestSetFeedbackVisibility(t *testing.T) {
	var gotForm url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/feedback/hide_show_feedback/f3" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		r.ParseForm()
		gotForm = r.PostForm
		io.WriteString(w, `{}`)
	})

	if err := c.SetFeedbackVisibility(context.Background(), "f3", false); err != nil {
		t.Fatalf("set visibility: %v", err)
	}
	if gotForm.Get("isVisible") != "false" {
		t.Errorf("isVisible = %q", gotForm.Get("isVisible"))
	}
}

func TestDeleteBooking(t *testing.T) {
	var gotMethod, gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	if err := c.DeleteBooking(context.Background(), "b2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/booking/delete_booking/b2" {
		t.Errorf("got %s %s", gotMethod, gotPath)
	}
}

func TestChangePassword(t *testing.T) {
	var gotPath string
	var gotForm url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		r.ParseForm()
		gotForm = r.PostForm
		io.WriteString(w, `{}`)
	})

	if err := c.ChangePassword(context.Background(), "old-pass", "new-pass"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if gotPath != "/auth/change_password" {
		t.Errorf("path = %q", gotPath)
	}
	if gotForm.Get("oldPassword") != "old-pass" || gotForm.Get("newPassword") != "new-pass" {
		t.Errorf("form = %v", gotForm)
	}
}

func TestMenuItemEndpointPaths(t *testing.T) {
	var gotMethod, gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		io.WriteString(w, `{}`)
	})

	item := model.NewMenuItem{Name: "Margherita", Category: "Pizza", Price: 12.5}
	if err := c.UpdateMenuItem(context.Background(), "mi7", item); err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/menuitem/update/mi7" {
		t.Errorf("update hit %s %s, want PUT /menuitem/update/mi7", gotMethod, gotPath)
	}

	if err := c.DeleteMenuItem(context.Background(), "mi7"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/menuitem/delete/mi7" {
		t.Errorf("delete hit %s %s, want DELETE /menuitem/delete/mi7", gotMethod, gotPath)
	}
}
