package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/kingrea/roster/internal/employee"
	"github.com/kingrea/roster/internal/metrics"
)

const (
	firstDismissal  = "佐藤太郎"
	secondDismissal = "鈴木次郎"
)

var banner = strings.Repeat("=", 60)

// runDemo replays the roster walkthrough: list the company, let the
// president dismiss one member, rehire them, run the company's dismissal
// procedure on another, list again, and finally close the company.
func runDemo(out io.Writer, company *employee.Company, collector *metrics.Collector) error {
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "社員管理システム デモ開始")
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "【社員一覧】")
	renderStaff(out, company.Staffs())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "【社長情報】")
	renderPresident(out, company.President())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "【社長による解雇】")
	fmt.Fprintf(out, "解雇前の社員数: %d人\n", company.Staffs().Len())
	company.President().Dismiss(firstDismissal)
	fmt.Fprintf(out, "解雇後の社員数: %d人\n", company.Staffs().Len())
	fmt.Fprintln(out)

	rehired := employee.NewStaff()
	rehired.SetName(firstDismissal)
	rehired.SetSalary(200000)
	rehired.SetDivision("営業部")
	company.Staffs().Append(rehired)
	fmt.Fprintf(out, "%sを再雇用しました（現在の社員数: %d人）\n", firstDismissal, company.Staffs().Len())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "【会社による解雇手続き】")
	company.PerformDismissalProcedure(secondDismissal)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "【最終的な社員一覧】")
	renderStaff(out, company.Staffs())
	fmt.Fprintf(out, "社長：%s\n", company.President().Name())
	fmt.Fprintln(out)

	if collector != nil {
		fmt.Fprintln(out, "【メトリクス】")
		if err := renderMetrics(out, collector); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "会社を閉じます")
	fmt.Fprintln(out, banner)
	company.Close()
	return nil
}

func renderStaff(out io.Writer, roster *employee.Roster) {
	table := tablewriter.NewWriter(out)
	table.Header("名前", "給料", "所属")
	for _, s := range roster.All() {
		table.Append([]string{s.Name(), yen(s.Salary()), s.Division()})
	}
	table.Render()
}

func renderPresident(out io.Writer, president *employee.President) {
	table := tablewriter.NewWriter(out)
	table.Header("名前", "給料")
	table.Append([]string{president.Name(), yen(president.Salary())})
	table.Render()
}

func renderMetrics(out io.Writer, collector *metrics.Collector) error {
	samples, err := collector.Snapshot()
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(out)
	table.Header("Metric", "Value")
	for _, s := range samples {
		table.Append([]string{s.Key, strconv.FormatFloat(s.Value, 'f', -1, 64)})
	}
	table.Render()
	return nil
}

func yen(amount int) string {
	return strconv.Itoa(amount) + "円"
}
