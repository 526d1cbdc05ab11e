package client

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"deeprealties/backend/models"
)

var ErrNotSignedIn = errors.New("not signed in")

type SellerDashboard struct {
	Properties []models.Property
	Enquiries  []models.Enquiry
}

type AdminDashboard struct {
	Summary    models.AdminDashboard
	Users      []models.User
	Properties []models.Property
	Pending    []models.Property
	Enquiries  []models.Enquiry
}

type BuyerDashboard struct {
	Profile     models.User
	Enquiries   []models.Enquiry
	Interested  []models.Property
	Suggestions []models.Property
}

// settle runs fn and swallows its error so one failed call leaves its own
// slot empty instead of failing the page.
func settle[T any](ctx context.Context, dst *T, fn func(context.Context) (T, error)) func() error {
	return func() error {
		v, err := fn(ctx)
		if err == nil {
			*dst = v
		}
		return nil
	}
}

func LoadSellerDashboard(ctx context.Context, c *Client) SellerDashboard {
	var d SellerDashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(settle(gctx, &d.Properties, c.SellerProperties))
	g.Go(settle(gctx, &d.Enquiries, c.SellerEnquiries))
	_ = g.Wait()
	return d
}

func LoadAdminDashboard(ctx context.Context, c *Client) AdminDashboard {
	var d AdminDashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(settle(gctx, &d.Summary, c.AdminDashboard))
	g.Go(settle(gctx, &d.Users, c.AdminUsers))
	g.Go(settle(gctx, &d.Properties, c.AdminProperties))
	g.Go(settle(gctx, &d.Pending, c.PendingProperties))
	g.Go(settle(gctx, &d.Enquiries, c.AdminEnquiries))
	_ = g.Wait()
	return d
}

// LoadBuyerDashboard needs the profile; without it the page redirects to
// login. Properties behind the buyer's enquiries are fetched one per id.
func LoadBuyerDashboard(ctx context.Context, c *Client) (BuyerDashboard, error) {
	var d BuyerDashboard
	me, err := c.Me(ctx)
	if err != nil {
		return d, ErrNotSignedIn
	}
	d.Profile = me

	g, gctx := errgroup.WithContext(ctx)
	g.Go(settle(gctx, &d.Enquiries, c.MyEnquiries))
	g.Go(settle(gctx, &d.Suggestions, func(ctx context.Context) ([]models.Property, error) {
		return c.Properties(ctx, models.PropertyFilter{}, Page{Limit: 6})
	}))
	_ = g.Wait()

	ids := make([]int64, 0, len(d.Enquiries))
	seen := map[int64]bool{}
	for _, e := range d.Enquiries {
		if !seen[e.PropertyID] {
			seen[e.PropertyID] = true
			ids = append(ids, e.PropertyID)
		}
	}
	found := make([]*models.Property, len(ids))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, id := range ids {
		g.Go(func() error {
			if p, err := c.Property(gctx, id); err == nil {
				found[i] = &p
			}
			return nil
		})
	}
	_ = g.Wait()
	for _, p := range found {
		if p != nil {
			d.Interested = append(d.Interested, *p)
		}
	}
	return d, nil
}
