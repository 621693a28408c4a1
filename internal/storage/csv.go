package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/fabiodan/bouncy-colors/internal/physics"
	"github.com/fabiodan/bouncy-colors/internal/sim"
)

// Trajectory CSV layout: tick, wall_hits, contacts, then x, y, vx, vy,
// visual for every body. Contacts are written as space separated
// "i:j:speed" triples.
const fixedColumns = 3

func header(n int) []string {
	h := []string{"tick", "wall_hits", "contacts"}
	for i := 0; i < n; i++ {
		h = append(h,
			fmt.Sprintf("x%d", i),
			fmt.Sprintf("y%d", i),
			fmt.Sprintf("vx%d", i),
			fmt.Sprintf("vy%d", i),
			fmt.Sprintf("visual%d", i),
		)
	}
	return h
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes frames in trajectory CSV form. Nothing is written for an
// empty slice.
func WriteCSV(w io.Writer, frames []sim.Frame) error {
	if len(frames) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header(len(frames[0].Bodies))); err != nil {
		return err
	}

	for _, f := range frames {
		row := []string{
			strconv.Itoa(f.Tick),
			strconv.Itoa(f.WallHits),
			formatContacts(f.Contacts),
		}
		for _, b := range f.Bodies {
			row = append(row,
				formatFloat(b.Position.X),
				formatFloat(b.Position.Y),
				formatFloat(b.Velocity.X),
				formatFloat(b.Velocity.Y),
				strconv.Itoa(int(b.Visual)),
			)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses trajectory CSV. Every body is rebuilt with the given
// radius.
func ReadCSV(r io.Reader, radius float64) ([]sim.Frame, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Frame{}, nil
	}

	cols := len(records[0]) - fixedColumns
	if cols < 0 || cols%5 != 0 {
		return nil, fmt.Errorf("storage: malformed header with %d columns", len(records[0]))
	}
	n := cols / 5

	frames := make([]sim.Frame, 0, len(records)-1)
	for line, record := range records[1:] {
		f, err := parseFrame(record, n, radius)
		if err != nil {
			return nil, fmt.Errorf("storage: line %d: %w", line+2, err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func parseFrame(record []string, n int, radius float64) (sim.Frame, error) {
	var f sim.Frame
	var err error

	if f.Tick, err = strconv.Atoi(record[0]); err != nil {
		return f, err
	}
	if f.WallHits, err = strconv.Atoi(record[1]); err != nil {
		return f, err
	}
	if f.Contacts, err = parseContacts(record[2]); err != nil {
		return f, err
	}

	f.Bodies = make([]physics.Body, n)
	for i := 0; i < n; i++ {
		col := record[fixedColumns+5*i : fixedColumns+5*i+5]
		var v [4]float64
		for k := range v {
			if v[k], err = strconv.ParseFloat(col[k], 64); err != nil {
				return f, err
			}
		}
		visual, err := strconv.Atoi(col[4])
		if err != nil {
			return f, err
		}

		b, err := physics.NewBody(r2.Point{X: v[0], Y: v[1]}, r2.Point{X: v[2], Y: v[3]}, radius)
		if err != nil {
			return f, err
		}
		b.Visual = physics.VisualState(visual % physics.NumVisualStates)
		f.Bodies[i] = b
	}
	return f, nil
}

func formatContacts(contacts []physics.Contact) string {
	parts := make([]string, len(contacts))
	for i, c := range contacts {
		parts[i] = fmt.Sprintf("%d:%d:%s", c.I, c.J, formatFloat(c.Speed))
	}
	return strings.Join(parts, " ")
}

func parseContacts(s string) ([]physics.Contact, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}

	contacts := make([]physics.Contact, 0, len(fields))
	for _, field := range fields {
		parts := strings.Split(field, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("bad contact %q", field)
		}
		i, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, err
		}
		j, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, err
		}
		speed, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, physics.Contact{I: i, J: j, Speed: speed})
	}
	return contacts, nil
}
