package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourceHeader = "Name,Platform,Year_of_Release,Genre,Publisher,NA_Sales,EU_Sales,JP_Sales,Other_Sales,Global_Sales,Critic_Score,Critic_Count,User_Score,User_Count,Developer,Rating"

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.Contains(t, err.Error(), "no-such-file.csv")
}

func TestLoadReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		rows    int
	}{
		{
			name:  "two rows in order",
			input: sourceHeader + "\n" + "Game A,PS2,2004,Action,Sony,1.0,1.0,1.0,1.0,4.0,80,10,8.1,100,Dev,E\n" + "Game B,PS3,2008,Racing,Sony,0.5,0.5,0.5,0.5,2.0,70,5,7.0,50,Dev,E\n",
			rows:  2,
		},
		{
			name:  "header only is an empty table",
			input: sourceHeader + "\n",
			rows:  0,
		},
		{
			name:    "empty source",
			input:   "",
			wantErr: ErrMalformedSource,
		},
		{
			name:    "missing required column",
			input:   strings.Replace(sourceHeader, "Global_Sales", "Sales", 1) + "\nGame A,PS2,2004,Action,Sony,1,1,1,1,4,80,10,8.1,100,Dev,E\n",
			wantErr: ErrMalformedSource,
		},
		{
			name:    "inconsistent field count",
			input:   sourceHeader + "\nGame A,PS2,2004\n",
			wantErr: ErrMalformedSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := LoadReader(strings.NewReader(tt.input), "test.csv")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, table.Rows, tt.rows)
		})
	}
}

func TestLoadReaderPreservesOrderAndFields(t *testing.T) {
	input := sourceHeader + "\n" +
		"Game B,PS3,2008,Racing,Sony,0.5,0.5,0.5,0.5,2.0,70,5,7.0,50,Dev B,E\n" +
		"Game A,PS2,2004,Action,Sony,1.0,1.0,1.0,1.0,4.0,80,10,8.1,100,Dev A,M\n"

	table, err := LoadReader(strings.NewReader(input), "test.csv")
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "Game B", table.Rows[0].Name)
	assert.Equal(t, "Game A", table.Rows[1].Name)

	first := table.Rows[0]
	assert.Equal(t, "PS3", first.Platform)
	assert.Equal(t, "2008", first.YearOfRelease)
	assert.Equal(t, "Racing", first.Genre)
	assert.Equal(t, "Sony", first.Publisher)
	assert.Equal(t, "2.0", first.GlobalSales)
	assert.Equal(t, "70", first.CriticScore)
	assert.Equal(t, "Dev B", first.Developer)
	assert.Equal(t, "E", first.Rating)
}

func TestLoadReaderReorderedHeader(t *testing.T) {
	// Column lookup is by name, so a shuffled header still loads.
	input := "Platform,Name,Global_Sales,Year_of_Release,Genre,Publisher,NA_Sales,EU_Sales,JP_Sales,Other_Sales,Critic_Score,Critic_Count,User_Score,User_Count,Developer,Rating\n" +
		"PS4,Game X,7.0,2015,Shooter,Sony,2,2,2,1,90,20,9.0,200,Dev,M\n"

	table, err := LoadReader(strings.NewReader(input), "test.csv")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Game X", table.Rows[0].Name)
	assert.Equal(t, "PS4", table.Rows[0].Platform)
	assert.Equal(t, "7.0", table.Rows[0].GlobalSales)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.csv")
	content := sourceHeader + "\nGame A,PS2,2004,Action,Sony,1,1,1,1,4.0,80,10,8.1,100,Dev,E\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, table.Source)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Game A", table.Rows[0].Name)
}
