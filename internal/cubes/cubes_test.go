package cubes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
	"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue",
	"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red",
	"Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red",
	"Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green",
}

func TestTokens(t *testing.T) {
	want := []string{
		"Game", "1", ":", "3", "blue", ",", "4", "red", ";", "1", "red", ",", "2", "green",
		",", "6", "blue", ";", "2", "green",
	}
	if diff := cmp.Diff(want, tokens(sample[0])); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse(sample[0])
	require.NoError(t, err)
	want := Game{
		ID: 1,
		Rounds: []Cubes{
			{Red: 4, Blue: 3},
			{Red: 1, Green: 2, Blue: 6},
			{Green: 2},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"Round 1: 3 blue",
		"Game x: 3 blue",
		"Game 1: three blue",
		"Game 1: 3 purple",
		"Game 1: 3 blue 4 red",
		"Game 1: 3",
	} {
		_, err := Parse(line)
		assert.Error(t, err, "%q", line)
	}
}

func TestSample(t *testing.T) {
	games, err := ParseAll(sample)
	require.NoError(t, err)

	ids, power := 0, 0
	for _, g := range games {
		if g.Possible(Bag) {
			ids += g.ID
		}
		power += g.Minimum().Power()
	}
	assert.Equal(t, 8, ids)
	assert.Equal(t, 2286, power)
}

func TestPowerSkipsMissingColours(t *testing.T) {
	assert.Equal(t, 6, Cubes{Red: 2, Blue: 3}.Power())
	assert.Equal(t, 1, Cubes{}.Power())
}
