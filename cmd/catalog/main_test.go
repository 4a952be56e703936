package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bogem/id3v2"
)

func writeTrack(t *testing.T, dir, file, title, album, year, tlen string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, file))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tag := id3v2.NewEmptyTag()
	tag.SetTitle(title)
	if album != "" {
		tag.SetAlbum(album)
		tag.SetYear(year)
	}
	tag.AddTextFrame("TLEN", id3v2.EncodingUTF8, tlen)
	if _, err := tag.WriteTo(f); err != nil {
		t.Fatal(err)
	}
}

func newMusicDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTrack(t, dir, "1.mp3", "Time", "Dark Side", "1973", "413000")
	writeTrack(t, dir, "2.mp3", "Money", "Dark Side", "1973", "382000")
	writeTrack(t, dir, "3.mp3", "Us and Them", "Dark Side", "1973", "462000")
	writeTrack(t, dir, "4.mp3", "Shine On", "Wish You Were Here", "1975", "810000")
	writeTrack(t, dir, "5.mp3", "Demo", "", "", "120000")
	return dir
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	if err := app.Run(append([]string{"catalog"}, args...)); err != nil {
		t.Fatalf("catalog %v: %v", args, err)
	}
	return out.String()
}

func TestCommands(t *testing.T) {
	dir := newMusicDir(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"songs"}, "Demo\nMoney\nShine On\nTime\nUs and Them\n"},
		{[]string{"albums"}, "Dark Side\nWish You Were Here\n"},
		{[]string{"albums", "--year", "1975"}, "Wish You Were Here\n"},
		{[]string{"count", "--album", "Dark Side"}, "3\n"},
		{[]string{"count", "--album", "Unknown"}, "0\n"},
		{[]string{"count", "--no-album"}, "1\n"},
		{[]string{"average", "--album", "Dark Side"}, "429.75\n"},
		{[]string{"average", "--album", "Dark Side", "--mean"}, "419\n"},
		{[]string{"longest"}, "song:  Shine On\nalbum: Dark Side\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			args := append([]string{"--dir", dir}, tt.args...)
			if got := run(t, args...); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReportCommand(t *testing.T) {
	out := run(t, "--dir", newMusicDir(t), "report")
	for _, want := range []string{"Songs (5)", "Longest album: Dark Side", "1973: Dark Side"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q in:\n%s", want, out)
		}
	}
}

func TestPlaylistCommand(t *testing.T) {
	dir := newMusicDir(t)
	out := filepath.Join(t.TempDir(), "lists")

	got := run(t, "--dir", dir, "playlist", "--album", "Dark Side", "--out", out)
	path := filepath.Join(out, "Dark Side.m3u")
	if got != "wrote "+path+"\n" {
		t.Errorf("output = %q", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "#EXTINF:413,Time") {
		t.Errorf("playlist content:\n%s", data)
	}
}

func TestInitConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	run(t, "--dir", "/srv/music", "init-config", path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"music_path": "/srv/music"`) {
		t.Errorf("config content:\n%s", data)
	}

	out := run(t, "--config", path, "--dir", newMusicDir(t), "count", "--no-album")
	if out != "1\n" {
		t.Errorf("count with config = %q, want 1", out)
	}
}
