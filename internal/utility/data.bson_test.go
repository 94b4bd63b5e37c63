package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToMap_StructTheoBsonTag(t *testing.T) {
	type record struct {
		UserEmail string             `bson:"userEmail"`
		VideoID   primitive.ObjectID `bson:"videoId"`
		WatchTime int64              `bson:"watchTime"`
		Internal  string             `bson:"-"`
	}
	id := primitive.NewObjectID()
	m, err := ToMap(record{UserEmail: "agente@example.com", VideoID: id, WatchTime: 42, Internal: "bỏ qua"})
	require.NoError(t, err)

	assert.Equal(t, "agente@example.com", m["userEmail"])
	assert.Equal(t, id, m["videoId"])
	assert.EqualValues(t, 42, m["watchTime"])
	// Field gắn bson:"-" không được xuất hiện trong map
	_, ok := m["Internal"]
	assert.False(t, ok)
	_, ok = m["internal"]
	assert.False(t, ok)
}

func TestToMap_OmitemptyVaMap(t *testing.T) {
	type doc struct {
		Title string `bson:"title"`
		Note  string `bson:"note,omitempty"`
	}
	m, err := ToMap(doc{Title: "Bienvenida"})
	require.NoError(t, err)
	assert.Equal(t, "Bienvenida", m["title"])
	_, ok := m["note"]
	assert.False(t, ok, "field omitempty rỗng không được vào map")

	// Map đi qua ToMap phải giữ nguyên key
	m2, err := ToMap(map[string]interface{}{"primaryColor": "#B91C1C"})
	require.NoError(t, err)
	assert.Equal(t, "#B91C1C", m2["primaryColor"])
}
