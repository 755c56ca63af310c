package command

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cutsea110/payroll-core/internal/domain"
)

// ParseError locates the offending position in malformed script input.
type ParseError struct {
	Line    int
	Col     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Message)
}

type token struct {
	text string
	line int
	col  int
}

const dateLayout = "2006-01-02"

// Parse consumes the entire script into a sequence of commands. On any
// malformed line it returns a *ParseError identifying the offending
// position and a nil command slice — callers are expected to treat this as
// an empty script rather than attempt partial recovery.
func Parse(script string) ([]Command, error) {
	var commands []Command

	scanner := bufio.NewScanner(strings.NewReader(script))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		toks, err := tokenizeLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		if len(toks) == 0 {
			continue
		}
		cmd, err := parseCommand(toks)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: lineNo, Col: 0, Message: err.Error()}
	}
	return commands, nil
}

// tokenizeLine strips a trailing "#"-comment and splits the remainder into
// whitespace-separated tokens, treating a double-quoted span as one token.
func tokenizeLine(line string, lineNo int) ([]token, error) {
	var toks []token
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		for i < len(runes) && isSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}
		if runes[i] == '#' {
			break
		}
		col := i + 1
		if runes[i] == '"' {
			j := i + 1
			for j < len(runes) && runes[j] != '"' {
				j++
			}
			if j >= len(runes) {
				return nil, &ParseError{Line: lineNo, Col: col, Message: "unterminated quoted string"}
			}
			toks = append(toks, token{text: string(runes[i+1 : j]), line: lineNo, col: col})
			i = j + 1
			continue
		}
		j := i
		for j < len(runes) && !isSpace(runes[j]) && runes[j] != '#' {
			j++
		}
		toks = append(toks, token{text: string(runes[i:j]), line: lineNo, col: col})
		i = j
	}
	return toks, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

func parseCommand(toks []token) (Command, error) {
	head := toks[0]
	switch head.text {
	case "AddEmp":
		return parseAddEmp(toks)
	case "DelEmp":
		return parseDelEmp(toks)
	case "TimeCard":
		return parseTimeCard(toks)
	case "SalesReceipt":
		return parseSalesReceipt(toks)
	case "ServiceCharge":
		return parseServiceCharge(toks)
	case "ChgEmp":
		return parseChgEmp(toks)
	case "Payday":
		return parsePayday(toks)
	default:
		return Command{}, errAt(head, "unknown command %q", head.text)
	}
}

func parseAddEmp(toks []token) (Command, error) {
	if len(toks) < 5 {
		return Command{}, errAt(toks[0], "AddEmp requires at least 5 fields")
	}
	id, err := parseEmployeeID(toks[1])
	if err != nil {
		return Command{}, err
	}
	name := toks[2].text
	address := toks[3].text
	switch toks[4].text {
	case "S":
		if len(toks) != 6 {
			return Command{}, errAt(toks[4], "AddEmp S requires exactly one salary field")
		}
		salary, err := parseAmount(toks[5])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindAddSalaried, EmployeeID: id, Name: name, Address: address, Salary: salary}, nil
	case "H":
		if len(toks) != 6 {
			return Command{}, errAt(toks[4], "AddEmp H requires exactly one hourly rate field")
		}
		rate, err := parseAmount(toks[5])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindAddHourly, EmployeeID: id, Name: name, Address: address, HourlyRate: rate}, nil
	case "C":
		if len(toks) != 7 {
			return Command{}, errAt(toks[4], "AddEmp C requires salary and commission rate fields")
		}
		salary, err := parseAmount(toks[5])
		if err != nil {
			return Command{}, err
		}
		rate, err := parseAmount(toks[6])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindAddCommissioned, EmployeeID: id, Name: name, Address: address, Salary: salary, CommissionRate: rate}, nil
	default:
		return Command{}, errAt(toks[4], "unknown classification letter %q", toks[4].text)
	}
}

func parseDelEmp(toks []token) (Command, error) {
	if len(toks) != 2 {
		return Command{}, errAt(toks[0], "DelEmp requires exactly one id field")
	}
	id, err := parseEmployeeID(toks[1])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindDelEmp, EmployeeID: id}, nil
}

func parseTimeCard(toks []token) (Command, error) {
	if len(toks) != 4 {
		return Command{}, errAt(toks[0], "TimeCard requires id, date and hours fields")
	}
	id, err := parseEmployeeID(toks[1])
	if err != nil {
		return Command{}, err
	}
	date, err := parseDate(toks[2])
	if err != nil {
		return Command{}, err
	}
	hours, err := parseAmount(toks[3])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindTimeCard, EmployeeID: id, Date: date, Hours: hours}, nil
}

func parseSalesReceipt(toks []token) (Command, error) {
	if len(toks) != 4 {
		return Command{}, errAt(toks[0], "SalesReceipt requires id, date and amount fields")
	}
	id, err := parseEmployeeID(toks[1])
	if err != nil {
		return Command{}, err
	}
	date, err := parseDate(toks[2])
	if err != nil {
		return Command{}, err
	}
	amount, err := parseAmount(toks[3])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindSalesReceipt, EmployeeID: id, Date: date, Amount: amount}, nil
}

func parseServiceCharge(toks []token) (Command, error) {
	if len(toks) != 4 {
		return Command{}, errAt(toks[0], "ServiceCharge requires member id, date and amount fields")
	}
	memberID, err := parseMemberID(toks[1])
	if err != nil {
		return Command{}, err
	}
	date, err := parseDate(toks[2])
	if err != nil {
		return Command{}, err
	}
	amount, err := parseAmount(toks[3])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindServiceCharge, MemberID: memberID, Date: date, Amount: amount}, nil
}

func parseChgEmp(toks []token) (Command, error) {
	if len(toks) < 3 {
		return Command{}, errAt(toks[0], "ChgEmp requires an id and a field name")
	}
	id, err := parseEmployeeID(toks[1])
	if err != nil {
		return Command{}, err
	}
	switch toks[2].text {
	case "Name":
		if len(toks) != 4 {
			return Command{}, errAt(toks[2], "ChgEmp Name requires exactly one field")
		}
		return Command{Kind: KindChgName, EmployeeID: id, Name: toks[3].text}, nil
	case "Address":
		if len(toks) != 4 {
			return Command{}, errAt(toks[2], "ChgEmp Address requires exactly one field")
		}
		return Command{Kind: KindChgAddress, EmployeeID: id, Address: toks[3].text}, nil
	case "Hourly":
		if len(toks) != 4 {
			return Command{}, errAt(toks[2], "ChgEmp Hourly requires exactly one rate field")
		}
		rate, err := parseAmount(toks[3])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindChgHourly, EmployeeID: id, HourlyRate: rate}, nil
	case "Salaried":
		if len(toks) != 4 {
			return Command{}, errAt(toks[2], "ChgEmp Salaried requires exactly one salary field")
		}
		salary, err := parseAmount(toks[3])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindChgSalaried, EmployeeID: id, Salary: salary}, nil
	case "Commissioned":
		if len(toks) != 5 {
			return Command{}, errAt(toks[2], "ChgEmp Commissioned requires salary and commission rate fields")
		}
		salary, err := parseAmount(toks[3])
		if err != nil {
			return Command{}, err
		}
		rate, err := parseAmount(toks[4])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindChgCommissioned, EmployeeID: id, Salary: salary, CommissionRate: rate}, nil
	case "Hold":
		if len(toks) != 3 {
			return Command{}, errAt(toks[2], "ChgEmp Hold takes no further fields")
		}
		return Command{Kind: KindChgHold, EmployeeID: id}, nil
	case "Direct":
		if len(toks) != 5 {
			return Command{}, errAt(toks[2], "ChgEmp Direct requires bank and account fields")
		}
		return Command{Kind: KindChgDirect, EmployeeID: id, Bank: toks[3].text, Account: toks[4].text}, nil
	case "Mail":
		if len(toks) != 4 {
			return Command{}, errAt(toks[2], "ChgEmp Mail requires exactly one address field")
		}
		return Command{Kind: KindChgMail, EmployeeID: id, Address: toks[3].text}, nil
	case "Member":
		if len(toks) != 6 || toks[4].text != "Dues" {
			return Command{}, errAt(toks[2], "ChgEmp Member requires <member_id> Dues <dues>")
		}
		memberID, err := parseMemberID(toks[3])
		if err != nil {
			return Command{}, err
		}
		dues, err := parseAmount(toks[5])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindChgMember, EmployeeID: id, MemberID: memberID, Dues: dues}, nil
	case "NoMember":
		if len(toks) != 3 {
			return Command{}, errAt(toks[2], "ChgEmp NoMember takes no further fields")
		}
		return Command{Kind: KindChgNoMember, EmployeeID: id}, nil
	default:
		return Command{}, errAt(toks[2], "unknown ChgEmp field %q", toks[2].text)
	}
}

func parsePayday(toks []token) (Command, error) {
	if len(toks) != 2 {
		return Command{}, errAt(toks[0], "Payday requires exactly one date field")
	}
	date, err := parseDate(toks[1])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindPayday, Date: date}, nil
}

func parseNonNegativeInt(t token) (int64, error) {
	n, err := strconv.ParseInt(t.text, 10, 64)
	if err != nil || n < 0 {
		return 0, errAt(t, "expected a non-negative integer id, got %q", t.text)
	}
	return n, nil
}

func parseEmployeeID(t token) (domain.EmployeeID, error) {
	n, err := parseNonNegativeInt(t)
	if err != nil {
		return 0, err
	}
	return domain.EmployeeID(n), nil
}

func parseMemberID(t token) (domain.MemberID, error) {
	n, err := parseNonNegativeInt(t)
	if err != nil {
		return 0, err
	}
	return domain.MemberID(n), nil
}

func parseDate(t token) (time.Time, error) {
	d, err := time.Parse(dateLayout, t.text)
	if err != nil {
		return time.Time{}, errAt(t, "expected a YYYY-MM-DD date, got %q", t.text)
	}
	return d, nil
}

func parseAmount(t token) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(t.text)
	if err != nil {
		return decimal.Decimal{}, errAt(t, "expected a decimal number, got %q", t.text)
	}
	return d, nil
}

func errAt(t token, format string, args ...any) *ParseError {
	return &ParseError{Line: t.line, Col: t.col, Message: fmt.Sprintf(format, args...)}
}
