package employee

import "testing"

func TestCompleteScenario(t *testing.T) {
	c := New()
	c.Staffs().Append(newStaff("佐藤太郎", 200000, "営業部"))
	c.Staffs().Append(newStaff("鈴木次郎", 300000, "開発部"))
	c.President().SetName("偉井杉人")
	c.President().SetSalary(2500000)

	if c.Staffs().Len() != 2 {
		t.Fatalf("roster length = %d, want 2", c.Staffs().Len())
	}
	if got := c.President().Name(); got != "偉井杉人社長" {
		t.Fatalf("president name = %q", got)
	}
	if got := c.President().Salary(); got != 2500000 {
		t.Fatalf("president salary = %d", got)
	}

	c.President().Dismiss("佐藤太郎")
	if c.Staffs().Len() != 1 {
		t.Fatalf("roster length after dismiss = %d, want 1", c.Staffs().Len())
	}
	remaining := c.Staffs().At(0)
	if remaining.Name() != "鈴木次郎" || remaining.Salary() != 300000 || remaining.Division() != "開発部" {
		t.Fatalf("unexpected remaining staff: %q %d %q", remaining.Name(), remaining.Salary(), remaining.Division())
	}
}
