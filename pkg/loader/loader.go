// pkg/loader/loader.go
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Sentinel errors for load-time failures. Both abort the run; no partial
// table is ever returned alongside one of these.
var (
	// ErrSourceNotFound indicates the input location could not be opened.
	ErrSourceNotFound = errors.New("source not found")
	// ErrMalformedSource indicates the header or row structure is unusable.
	ErrMalformedSource = errors.New("malformed source")
)

// requiredColumns lists the header names the source must carry, exactly as
// they appear in the dataset. Header order may vary; extra columns are
// ignored.
var requiredColumns = []string{
	"Name", "Platform", "Year_of_Release", "Genre", "Publisher",
	"NA_Sales", "EU_Sales", "JP_Sales", "Other_Sales", "Global_Sales",
	"Critic_Score", "Critic_Count", "User_Score", "User_Count",
	"Developer", "Rating",
}

// RawRecord is one source row with every field still in string form.
// Typing happens later in the cleaner; the loader only names the columns.
type RawRecord struct {
	Name          string
	Platform      string
	YearOfRelease string
	Genre         string
	Publisher     string
	NASales       string
	EUSales       string
	JPSales       string
	OtherSales    string
	GlobalSales   string
	CriticScore   string
	CriticCount   string
	UserScore     string
	UserCount     string
	Developer     string
	Rating        string
}

// RawTable is the untyped source table in original row order.
type RawTable struct {
	Source string
	Rows   []RawRecord
}

// Load reads the delimited source file at path.
func Load(path string) (*RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}
	defer f.Close()

	return LoadReader(f, path)
}

// LoadReader reads a delimited source from r. The name is used only for
// error messages and logging.
func LoadReader(r io.Reader, name string) (*RawTable, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s: missing header row", ErrMalformedSource, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading header: %v", ErrMalformedSource, name, err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		if _, seen := idx[col]; !seen {
			idx[col] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s: missing column %q", ErrMalformedSource, name, col)
		}
	}

	table := &RawTable{Source: name}
	// csv.Reader enforces a consistent field count against the header, so an
	// inconsistent row surfaces here as a read error.
	for rowNum := 2; ; rowNum++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: row %d: %v", ErrMalformedSource, name, rowNum, err)
		}
		table.Rows = append(table.Rows, rawRecordFrom(fields, idx))
	}

	zap.L().Named("loader").Info("Loaded source table",
		zap.String("source", name),
		zap.Int("rows", len(table.Rows)))

	return table, nil
}

// rawRecordFrom maps one positional row onto named columns using the
// header index.
func rawRecordFrom(fields []string, idx map[string]int) RawRecord {
	get := func(col string) string { return fields[idx[col]] }
	return RawRecord{
		Name:          get("Name"),
		Platform:      get("Platform"),
		YearOfRelease: get("Year_of_Release"),
		Genre:         get("Genre"),
		Publisher:     get("Publisher"),
		NASales:       get("NA_Sales"),
		EUSales:       get("EU_Sales"),
		JPSales:       get("JP_Sales"),
		OtherSales:    get("Other_Sales"),
		GlobalSales:   get("Global_Sales"),
		CriticScore:   get("Critic_Score"),
		CriticCount:   get("Critic_Count"),
		UserScore:     get("User_Score"),
		UserCount:     get("User_Count"),
		Developer:     get("Developer"),
		Rating:        get("Rating"),
	}
}
