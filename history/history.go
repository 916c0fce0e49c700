// Package history remembers the shows the user viewed most recently.
package history

import (
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/epibrowse/epibrowse/filesystem"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/source"
	"github.com/epibrowse/epibrowse/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Limit is how many shows are kept.
const Limit = 20

// Entry is a viewed show.
type Entry struct {
	ShowID   int       `json:"show_id"`
	ShowName string    `json:"show_name"`
	Episodes int       `json:"episodes"`
	ViewedAt time.Time `json:"viewed_at"`
}

func (e *Entry) String() string {
	if e.ShowName == "" {
		return "Show #" + strconv.Itoa(e.ShowID)
	}
	return e.ShowName
}

// Description summarizes the entry, e.g. "73 episodes, viewed 2 hours ago".
func (e *Entry) Description() string {
	return humanize.Comma(int64(e.Episodes)) + " episodes, viewed " + humanize.Time(e.ViewedAt)
}

var cacher = gache.New[map[int]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved entry keyed by show id.
func Get() (map[int]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[int]*Entry), nil
	}
	return cached, nil
}

// Recent returns the saved entries, most recently viewed first.
func Recent() ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ViewedAt.After(entries[j].ViewedAt)
	})
	return entries, nil
}

// Last is the most recently viewed show, if any.
func Last() mo.Option[*Entry] {
	entries, err := Recent()
	if err != nil || len(entries) == 0 {
		return mo.None[*Entry]()
	}
	return mo.Some(entries[0])
}

// Save records that show was viewed with the given number of episodes.
// It does nothing when history.save is off.
func Save(show *source.Show, episodes int) error {
	if !viper.GetBool(key.HistorySave) {
		return nil
	}

	saved, err := Get()
	if err != nil {
		return err
	}

	saved[show.ID] = &Entry{
		ShowID:   show.ID,
		ShowName: show.Name,
		Episodes: episodes,
		ViewedAt: time.Now(),
	}

	return cacher.Set(trim(saved))
}

// Remove forgets a show.
func Remove(showID int) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, showID)
	return cacher.Set(saved)
}

func trim(saved map[int]*Entry) map[int]*Entry {
	if len(saved) <= Limit {
		return saved
	}

	entries := lo.Values(saved)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ViewedAt.After(entries[j].ViewedAt)
	})

	return lo.SliceToMap(entries[:Limit], func(e *Entry) (int, *Entry) {
		return e.ShowID, e
	})
}
