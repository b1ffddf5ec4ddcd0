package handlers_test

import (
	"net/http"
	"testing"
)

func TestReviewFlow(t *testing.T) {
	app := newApp(t)

	register(t, app, "sam", "sam@example.com", "pw123", "seller")
	register(t, app, "bea", "bea@example.com", "pw123", "")
	seller := login(t, app, "sam@example.com", "pw123")
	buyer := login(t, app, "bea@example.com", "pw123")

	id := createListing(t, app, seller, "Teak Table", "furniture")

	// Reviews start empty and are public.
	resp, err := app.Test(jsonReq("GET", "/api/products/"+id+"/reviews", "", nil))
	if err != nil {
		t.Fatal(err)
	}
	var revs []struct {
		Username string `json:"username"`
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
	}
	decode(t, resp, &revs)
	if len(revs) != 0 {
		t.Fatalf("expected no reviews, got %+v", revs)
	}

	// Submitting requires auth.
	resp, err = app.Test(jsonReq("POST", "/api/products/"+id+"/reviews", "", map[string]any{"rating": 5}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous review: want 401, got %d", resp.StatusCode)
	}

	// Rating window is enforced.
	for _, rating := range []any{0, 6, "nope", nil} {
		resp, err = app.Test(jsonReq("POST", "/api/products/"+id+"/reviews", buyer, map[string]any{"rating": rating}))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("rating %v: want 400, got %d", rating, resp.StatusCode)
		}
	}

	resp, err = app.Test(jsonReq("POST", "/api/products/"+id+"/reviews", buyer, map[string]any{"rating": 4, "comment": "solid"}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("review create: status %d", resp.StatusCode)
	}

	// Reviewer name is snapshotted from the token.
	resp, err = app.Test(jsonReq("GET", "/api/products/"+id+"/reviews", "", nil))
	if err != nil {
		t.Fatal(err)
	}
	revs = nil
	decode(t, resp, &revs)
	if len(revs) != 1 || revs[0].Username != "bea" || revs[0].Rating != 4 || revs[0].Comment != "solid" {
		t.Fatalf("reviews = %+v", revs)
	}

	// The product document itself carries its reviews inline.
	resp, err = app.Test(jsonReq("GET", "/api/products/"+id, "", nil))
	if err != nil {
		t.Fatal(err)
	}
	var product struct {
		Name    string `json:"name"`
		Reviews []struct {
			Username string `json:"username"`
			Rating   int    `json:"rating"`
		} `json:"reviews"`
	}
	decode(t, resp, &product)
	if product.Name != "Teak Table" || len(product.Reviews) != 1 || product.Reviews[0].Username != "bea" {
		t.Fatalf("embedded reviews missing: %+v", product)
	}
}

func TestReviewUnknownProduct(t *testing.T) {
	app := newApp(t)

	register(t, app, "bea", "bea@example.com", "pw123", "")
	buyer := login(t, app, "bea@example.com", "pw123")

	resp, err := app.Test(jsonReq("POST", "/api/products/missing-id/reviews", buyer, map[string]any{"rating": 3}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonReq("GET", "/api/products/missing-id/reviews", "", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestRecommendEndpoint(t *testing.T) {
	app := newApp(t)

	register(t, app, "sam", "sam@example.com", "pw123", "seller")
	seller := login(t, app, "sam@example.com", "pw123")
	admin := adminToken(t, app)

	base := createListing(t, app, seller, "NES", "consoles")
	match := createListing(t, app, seller, "SNES", "consoles")
	_ = createListing(t, app, seller, "N64", "consoles") // stays pending
	other := createListing(t, app, seller, "Radio", "radios")

	for _, id := range []string{match, other} {
		if _, err := app.Test(jsonReq("PATCH", "/api/products/"+id+"/status", admin, map[string]string{"status": "approved"})); err != nil {
			t.Fatal(err)
		}
	}

	resp, err := app.Test(jsonReq("GET", "/api/products/"+base+"/recommend", "", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("recommend: status %d", resp.StatusCode)
	}
	var recs []struct {
		ID string `json:"id"`
	}
	decode(t, resp, &recs)
	if len(recs) != 1 || recs[0].ID != match {
		t.Fatalf("recs = %+v, want just %s", recs, match)
	}
}
