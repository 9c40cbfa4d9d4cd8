package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gameLog = `,,,Rushing,Rushing,Rushing,Receiving,Receiving,Receiving,Receiving
Date,Opp,Result,Att,Yds,TD,Tgt,Rec,Yds,TD
2024-09-08,PIT,L 10-18,21,70,1,5,3,22,0
2024-09-15,@LV,W 26-36,18,84,,2,2,27,1
Bye Week,,,,,,,,,
Total,,,39,154,1,7,5,49,1
`

func TestReadWeekly(t *testing.T) {
	res, err := ReadWeekly(strings.NewReader(gameLog))
	require.NoError(t, err)
	require.Len(t, res.Games, 2)
	assert.Len(t, res.Errors, 2)

	first := res.Games[0]
	assert.Equal(t, time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 21, first.RushAttempts)
	assert.Equal(t, 70.0, first.RushYards)
	assert.Equal(t, 1, first.RushTDs)
	assert.Equal(t, 5, first.Targets)
	assert.Equal(t, 3, first.Receptions)
	assert.Equal(t, 22.0, first.RecYards)
	assert.Equal(t, 0, first.RecTDs)

	second := res.Games[1]
	assert.Equal(t, 0, second.RushTDs)
	assert.Equal(t, 27.0, second.RecYards)
	assert.Equal(t, 1, second.RecTDs)
}

func TestReadWeekly_MissingColumns(t *testing.T) {
	_, err := ReadWeekly(strings.NewReader("banner\nDate,Att,Yds,TD\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.ErrorContains(t, err, "Yds.1")
	assert.ErrorContains(t, err, "Tgt")
}

func TestReadWeekly_Empty(t *testing.T) {
	_, err := ReadWeekly(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadWeekly_BadNumber(t *testing.T) {
	log := "banner\nDate,Att,Yds,TD,Tgt,Rec,Yds,TD\n2024-09-08,x,70,1,5,3,22,y\n"
	res, err := ReadWeekly(strings.NewReader(log))
	require.NoError(t, err)
	assert.Empty(t, res.Games)
	require.Len(t, res.Errors, 1)
	assert.ErrorContains(t, res.Errors[0], "Att")
	assert.ErrorContains(t, res.Errors[0], "TD.1")
}
