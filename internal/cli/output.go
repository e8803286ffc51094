package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Member:
		o.printMember(v)
	case MemberList:
		o.printMemberList(v)
	case Session:
		o.printSession(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Member response type (matches API)
type Member struct {
	TCID        string `json:"tc_id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	PhoneNumber string `json:"phone_number"`
	CreatedAt   string `json:"created_at"`
}

// MemberList response type
type MemberList struct {
	Members []Member `json:"members"`
}

// Session response type
type Session struct {
	SessionToken string `json:"session_token"`
	IsAdmin      bool   `json:"is_admin"`
	MemberID     string `json:"member_id,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printMember(m Member) {
	fmt.Printf("Identity number: %s\n", m.TCID)
	fmt.Printf("Name:            %s %s\n", m.Name, m.Surname)
	fmt.Printf("Phone:           %s\n", m.PhoneNumber)
	if m.CreatedAt != "" {
		fmt.Printf("Registered:      %s\n", m.CreatedAt)
	}
}

func (o *Output) printMemberList(list MemberList) {
	if len(list.Members) == 0 {
		fmt.Println("No members registered")
		return
	}

	fmt.Printf("%-12s %-20s %-20s %s\n", "IDENTITY", "NAME", "SURNAME", "PHONE")
	for _, m := range list.Members {
		fmt.Printf("%-12s %-20s %-20s %s\n", m.TCID, m.Name, m.Surname, m.PhoneNumber)
	}
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Token: %s\n", s.SessionToken)
	switch {
	case s.IsAdmin:
		fmt.Println("Role:  admin")
	case s.MemberID != "":
		fmt.Printf("Role:  member (%s)\n", s.MemberID)
	default:
		fmt.Println("Role:  anonymous")
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
