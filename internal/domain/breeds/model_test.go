package breeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteID(t *testing.T) {
	id := 1
	zero := 0
	tt := []struct {
		name string
		in   RemoteBreed
		want string
	}{
		{"natural id", RemoteBreed{ID: &id, Name: "Akita"}, "1"},
		{"zero id falls back to slug", RemoteBreed{ID: &zero, Name: "Akita"}, "api-akita"},
		{"missing id", RemoteBreed{Name: "German  Shepherd\tDog"}, "api-german-shepherd-dog"},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RemoteID(tc.in))
		})
	}
}

func TestImageSlug(t *testing.T) {
	assert.Equal(t, "german", ImageSlug("German Shepherd"))
	assert.Equal(t, "akita", ImageSlug("  Akita "))
	assert.Equal(t, "", ImageSlug("   "))
}

func TestPlaceholderURL(t *testing.T) {
	assert.Equal(t, "https://placedog.net/300/200?random=user-5", PlaceholderURL("user-5"))
	assert.Equal(t, "https://placedog.net/300/200?random=12", PlaceholderURL("12"))
}

func TestRecord_Helpers(t *testing.T) {
	r := Record{ID: "1", Origin: OriginRemote}
	assert.False(t, r.AddedByUser())
	assert.Equal(t, "", r.ImageURL())

	r = Record{ID: "user-1", Origin: OriginUser, Image: ImageRef{URL: strPtr("http://x/a.jpg")}}
	assert.True(t, r.AddedByUser())
	assert.Equal(t, "http://x/a.jpg", r.ImageURL())
}
