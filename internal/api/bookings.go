package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"tavolo/internal/model"
)

// Bookings lists a tenant's reservations.
func (c *Client) Bookings(ctx context.Context, restaurantID string) ([]model.Booking, error) {
	q := url.Values{}
	q.Set("restaurantId", strings.TrimSpace(restaurantID))
	var out []model.Booking
	if err := c.get(ctx, "/booking/booking_list", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Booking fetches one reservation.
func (c *Client) Booking(ctx context.Context, id string) (*model.Booking, error) {
	var out model.Booking
	if err := c.postForm(ctx, "/booking/view_booking/"+url.PathEscape(strings.TrimSpace(id)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBooking applies the editable reservation fields.
func (c *Client) UpdateBooking(ctx context.Context, id string, b model.UpdateBooking) error {
	form := url.Values{}
	form.Set("customerName", strings.TrimSpace(b.CustomerName))
	form.Set("customerPhone", strings.TrimSpace(b.CustomerPhone))
	form.Set("tableNo", strings.TrimSpace(b.TableNo))
	form.Set("bookingTime", strings.TrimSpace(b.BookingTime))
	form.Set("noOfPerson", strconv.Itoa(b.NoOfPerson))
	form.Set("status", strings.TrimSpace(b.Status))
	return c.putForm(ctx, "/booking/update_booking/"+url.PathEscape(strings.TrimSpace(id)), form, nil)
}

// DeleteBooking removes a reservation permanently.
func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.delete(ctx, "/booking/delete_booking/"+url.PathEscape(strings.TrimSpace(id)))
}
