package store

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BadgerShop_Go/internal/domain"
)

// roundTrip copies the cookies written to w onto a fresh request, the way
// a browser would on the next page load
func roundTrip(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestUserData_RoundTrip(t *testing.T) {
	user := &domain.UserData{
		UserID:    "user_abc123def",
		FirstName: "Nova",
		LastName:  "Zhang",
		Email:     "nova.zhang42@example.com",
		Address: domain.Address{
			Street:  "42 Main Street Way, Apt 7",
			City:    "Seattle",
			ZipCode: "98101",
		},
		MemberSince: "March 2023",
	}

	w := httptest.NewRecorder()
	require.NoError(t, SetUserData(w, user))

	got, err := UserData(roundTrip(t, w))
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserData_Missing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := UserData(r)
	assert.ErrorIs(t, err, domain.ErrIdentityMissing)
}

func TestUserData_Corrupt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieUserData, Value: "not%20json"})

	_, err := UserData(r)
	assert.ErrorIs(t, err, domain.ErrIdentityCorrupt)
}

func TestUserData_MissingUserID(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, SetUserData(w, &domain.UserData{FirstName: "Nobody"}))

	_, err := UserData(roundTrip(t, w))
	assert.ErrorIs(t, err, domain.ErrIdentityCorrupt)
}

func TestClearUserData(t *testing.T) {
	w := httptest.NewRecorder()
	ClearUserData(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieUserData, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}

func TestCart_RoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, SetCart(w, []int{1, 3, 3, 6}))

	cart := Cart(roundTrip(t, w))
	assert.Equal(t, []int{1, 3, 3, 6}, cart)
}

func TestCart_MissingIsEmpty(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, Cart(r))
}

func TestCart_CorruptIsEmpty(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieCart, Value: "garbage"})
	assert.Empty(t, Cart(r))
}

func TestAddOrder_PrependsNewest(t *testing.T) {
	first := domain.Order{ID: "ORD-000001", UserID: "u", Total: 10, Status: domain.OrderStatusDelivered}
	second := domain.Order{ID: "ORD-000002", UserID: "u", Total: 20, Status: domain.OrderStatusDelivered}

	w1 := httptest.NewRecorder()
	require.NoError(t, AddOrder(w1, httptest.NewRequest(http.MethodGet, "/", nil), first))

	w2 := httptest.NewRecorder()
	require.NoError(t, AddOrder(w2, roundTrip(t, w1), second))

	orders := Orders(roundTrip(t, w2))
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-000002", orders[0].ID)
	assert.Equal(t, "ORD-000001", orders[1].ID)
}

func TestGenerateRandomUserData(t *testing.T) {
	user := GenerateRandomUserData()

	assert.True(t, len(user.UserID) > len("user_"))
	assert.Contains(t, user.UserID, "user_")
	assert.NotEmpty(t, user.FirstName)
	assert.NotEmpty(t, user.LastName)
	assert.Contains(t, user.Email, "@")
	assert.NotEmpty(t, user.Address.Street)
	assert.NotEmpty(t, user.Address.City)
	assert.Len(t, user.Address.ZipCode, 5)
	assert.NotEmpty(t, user.MemberSince)

	// Distinct users get distinct ids
	other := GenerateRandomUserData()
	assert.NotEqual(t, user.UserID, other.UserID)
}
