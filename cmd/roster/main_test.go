package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kingrea/roster/internal/config"
	"github.com/kingrea/roster/internal/employee"
	"github.com/kingrea/roster/internal/metrics"
	"github.com/kingrea/roster/internal/notify"
)

func seededCompany(t *testing.T, opts ...employee.Option) *employee.Company {
	t.Helper()
	projectDir := t.TempDir()
	if err := config.InitRosterDir(projectDir); err != nil {
		t.Fatalf("init roster dir: %v", err)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg.BuildCompany(opts...)
}

func TestRunDemoFinalRoster(t *testing.T) {
	collector := metrics.NewCollector()
	company := seededCompany(t, employee.WithNotifier(collector))
	var out bytes.Buffer
	if err := runDemo(&out, company, collector); err != nil {
		t.Fatalf("runDemo: %v", err)
	}
	if got := strings.Join(company.Staffs().Names(), ","); got != "佐藤太郎" {
		t.Fatalf("final roster = %s, want 佐藤太郎", got)
	}
	text := out.String()
	for _, want := range []string{
		"解雇前の社員数: 2人",
		"解雇後の社員数: 1人",
		"佐藤太郎を再雇用しました（現在の社員数: 2人）",
		"社長：偉井杉人社長",
		"roster_headcount",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("demo output missing %q:\n%s", want, text)
		}
	}
}

func TestRunDemoNoticeOrder(t *testing.T) {
	var out bytes.Buffer
	company := seededCompany(t, employee.WithNotifier(notify.Console(&out)))
	if err := runDemo(&out, company, nil); err != nil {
		t.Fatalf("runDemo: %v", err)
	}
	text := out.String()
	ordered := []string{
		"[解放通知] Staffインスタンス '佐藤太郎' を解放しました",
		"[解雇通知] 佐藤太郎さんを解雇しました",
		"[解放通知] Staffインスタンス '鈴木次郎' を解放しました",
		"[解雇手続き完了] 鈴木次郎さんの解雇手続きが完了しました",
		"現在わが社の社員数は2人になっています",
		"[解放通知] Presidentインスタンス '偉井杉人' を解放しました",
		"[解放通知] Companyインスタンスを解放しました",
	}
	last := -1
	for _, want := range ordered {
		idx := strings.Index(text, want)
		if idx < 0 {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
		if idx < last {
			t.Fatalf("%q printed out of order:\n%s", want, text)
		}
		last = idx
	}
	if strings.Contains(text, "【メトリクス】") {
		t.Fatalf("metrics table printed without a collector")
	}
}

func TestYen(t *testing.T) {
	if got := yen(2500000); got != "2500000円" {
		t.Fatalf("yen = %q", got)
	}
}
