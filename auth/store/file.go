package store

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/afs"
	"github.com/velostats/raceadmin/auth"
)

// File persists the credential as a JSON snapshot and serves as the durable
// tier of the dual store. Saves go through a tmp file and a rename so a crash
// never leaves a partial snapshot behind.
type File struct {
	mu   sync.RWMutex
	url  string
	fs   afs.Service
	snap snapshot
}

type snapshot struct {
	Token string          `json:"token,omitempty"`
	Admin json.RawMessage `json:"adminInfo,omitempty"`
}

// NewFile creates a file-backed store at URL (a local path or any
// afs-supported URL).
func NewFile(URL string) *File {
	f := &File{url: URL, fs: afs.New()}
	_ = f.load()
	return f
}

func (f *File) Read() auth.Credential {
	f.mu.RLock()
	defer f.mu.RUnlock()
	cred := auth.Credential{Token: f.snap.Token}
	if len(f.snap.Admin) > 0 {
		admin := &auth.AdminInfo{}
		// a malformed stored profile reads as absent
		if err := json.Unmarshal(f.snap.Admin, admin); err == nil {
			cred.Admin = admin
		}
	}
	return cred
}

func (f *File) Write(token string, admin *auth.AdminInfo) error {
	if token == "" {
		return auth.ErrEmptyToken
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap.Token = token
	if admin != nil {
		data, err := json.Marshal(admin)
		if err != nil {
			return err
		}
		f.snap.Admin = data
	}
	return f.save()
}

func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = snapshot{}
	return f.save()
}

func (f *File) save() error {
	ctx := context.Background()
	data, err := json.MarshalIndent(f.snap, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.url + ".tmp"
	if err = f.fs.Upload(ctx, tmp, 0o600, bytes.NewReader(data)); err != nil {
		return err
	}
	return f.fs.Move(ctx, tmp, f.url)
}

func (f *File) load() error {
	ctx := context.Background()
	if ok, _ := f.fs.Exists(ctx, f.url); !ok {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.url)
	if err != nil {
		return err
	}
	var snap snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return err
	}
	f.snap = snap
	return nil
}
