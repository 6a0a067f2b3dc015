package handler_test

import (
	"os"
	"testing"

	"github.com/vfg2006/client-insight-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}
