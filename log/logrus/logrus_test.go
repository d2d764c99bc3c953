package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	starsays "github.com/dinaypatil-web/whatmystarssays"
)

func TestFieldsReachLogrus(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	var lg starsays.Logger = LogrusLogger{E: logrus.NewEntry(base)}

	lg.Error("cache write-back failed", starsays.Fields{"key": "chart:abc", "err": "redis down"})

	e := hook.LastEntry()
	if e == nil {
		t.Fatal("no entry recorded")
	}
	if e.Level != logrus.ErrorLevel || e.Message != "cache write-back failed" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Data["key"] != "chart:abc" {
		t.Fatalf("fields not forwarded: %v", e.Data)
	}

	hook.Reset()
	lg.Debug("cache miss", nil)
	if hook.LastEntry() == nil {
		t.Fatal("debug entry with nil fields not recorded")
	}
}
