package session

import (
	"encoding/json"
	"time"

	"github.com/ElaineMBarros/promoterm/internal/localstore"
)

const (
	recentKey = "promoagente-recent"
	recentMax = 3
)

// RecentPromotion is one entry of the quick-recall list shown in the sidebar.
type RecentPromotion struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Timestamp string `json:"timestamp"`
}

// Recents caps the list at three entries, newest first, deduplicated by title.
type Recents struct {
	kv  localstore.KV
	now func() time.Time
}

func NewRecents(kv localstore.KV) *Recents {
	return &Recents{kv: kv, now: time.Now}
}

// Record prepends title, moving an existing entry with the same title to the
// front instead of duplicating it, and evicts past the cap.
func (r *Recents) Record(title string) error {
	if title == "" {
		return nil
	}
	list := r.List()

	kept := list[:0]
	for _, entry := range list {
		if entry.Title != title {
			kept = append(kept, entry)
		}
	}

	now := r.now()
	list = append([]RecentPromotion{{
		Title:     title,
		Date:      now.Format("02/01/2006 15:04"),
		Timestamp: now.Format(time.RFC3339),
	}}, kept...)
	if len(list) > recentMax {
		list = list[:recentMax]
	}

	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.kv.Set(recentKey, string(data))
}

// List returns the current entries, newest first. Absent or corrupt data
// reads as empty; it is a cache, not a record.
func (r *Recents) List() []RecentPromotion {
	raw, ok := r.kv.Get(recentKey)
	if !ok {
		return nil
	}
	var list []RecentPromotion
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}
