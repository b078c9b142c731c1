package almanac

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sledgeworks/aoc"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func parseSample(t *testing.T) Almanac {
	t.Helper()
	a, err := Parse(strings.Split(sample, "\n"))
	require.NoError(t, err)
	return a
}

func TestParse(t *testing.T) {
	a := parseSample(t)
	assert.Equal(t, []int{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Chain, 7)
	assert.Equal(t, "seed-to-soil", a.Chain[0].Name)
	assert.Equal(t, "humidity-to-location", a.Chain[6].Name)
	want := Map{
		Name: "seed-to-soil",
		Rules: []Rule{
			{Dst: 50, Src: 98, Len: 2},
			{Dst: 52, Src: 50, Len: 48},
		},
	}
	if diff := cmp.Diff(want, a.Chain[0]); diff != "" {
		t.Errorf("seed-to-soil mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no seeds", "soil: 1 2"},
		{"bad seed", "seeds: 1 x"},
		{"negative seed", "seeds: -1"},
		{"rule before header", "seeds: 1\n\n1 2 3"},
		{"short rule", "seeds: 1\n\na map:\n1 2"},
		{"bad rule", "seeds: 1\n\na map:\n1 2 z"},
		{"negative rule", "seeds: 1\n\na map:\n1 2 -3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lines []string
			if tt.input != "" {
				lines = strings.Split(tt.input, "\n")
			}
			_, err := Parse(lines)
			assert.Error(t, err)
		})
	}
}

func TestConvertBounds(t *testing.T) {
	m := Map{Rules: []Rule{{Dst: 52, Src: 50, Len: 48}}}
	tests := []struct {
		in, want int
	}{
		{49, 49},
		{50, 52},
		{97, 99},
		{98, 98}, // Src+Len is outside the rule
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Convert(tt.in), "Convert(%d)", tt.in)
	}
}

func TestConvertFirstRuleWins(t *testing.T) {
	m := Map{Rules: []Rule{
		{Dst: 100, Src: 0, Len: 10},
		{Dst: 200, Src: 5, Len: 10},
	}}
	assert.Equal(t, 105, m.Convert(5))
	assert.Equal(t, 109, m.Convert(9))
	// 10 is past the first rule's half-open end.
	assert.Equal(t, 205, m.Convert(10))
	assert.Equal(t, 214, m.Convert(14))
	assert.Equal(t, 15, m.Convert(15))
}

func TestChainApply(t *testing.T) {
	a := parseSample(t)
	tests := map[int]int{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, want := range tests {
		assert.Equal(t, want, a.Chain.Apply(seed), "seed %d", seed)
	}
}

func TestInvert(t *testing.T) {
	m := Map{Rules: []Rule{
		{Dst: 50, Src: 98, Len: 2},
		{Dst: 52, Src: 50, Len: 48},
		{Dst: 0, Src: 60, Len: 5}, // shadowed by the rule above
	}}
	q := aoc.Interval{Start: 45, End: 60}
	pieces := m.Invert(q)

	covered := map[int]bool{}
	for _, p := range pieces {
		for v := p.Src.Start; v < p.Src.End; v++ {
			require.False(t, covered[v], "source %d in two pieces", v)
			covered[v] = true
			assert.Equal(t, v+p.Offset, m.Convert(v), "piece %v", p)
		}
	}
	for v := 0; v < 200; v++ {
		assert.Equal(t, q.Contains(m.Convert(v)), covered[v], "source %d", v)
	}
	for i := 1; i < len(pieces); i++ {
		assert.LessOrEqual(t, pieces[i-1].Dest().Start, pieces[i].Dest().Start)
	}
}

func TestMinimizeSample(t *testing.T) {
	a := parseSample(t)

	got, ok := a.Chain.Minimize(PointSeeds(a.Seeds))
	require.True(t, ok)
	assert.Equal(t, 35, got)

	ranges, err := PairSeeds(a.Seeds)
	require.NoError(t, err)
	got, ok = a.Chain.Minimize(ranges)
	require.True(t, ok)
	assert.Equal(t, 46, got)
}

func TestMinimizeNoSeeds(t *testing.T) {
	a := parseSample(t)
	_, ok := a.Chain.Minimize(nil)
	assert.False(t, ok)
	_, ok = a.Chain.Minimize(SeedSet{{Start: 10, Len: 0}})
	assert.False(t, ok)
}

func TestMinimizeEmptyChain(t *testing.T) {
	got, ok := Chain{}.Minimize(SeedSet{{Start: 7, Len: 3}, {Start: 4, Len: 1}})
	require.True(t, ok)
	assert.Equal(t, 4, got)
}

func randomChain(r *rand.Rand) Chain {
	c := make(Chain, 1+r.Intn(4))
	for i := range c {
		rules := make([]Rule, r.Intn(5))
		for j := range rules {
			rules[j] = Rule{Dst: r.Intn(60), Src: r.Intn(60), Len: r.Intn(20)}
		}
		c[i] = Map{Rules: rules}
	}
	return c
}

func TestMinimizeMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(2023))
	for i := 0; i < 500; i++ {
		c := randomChain(r)
		seeds := make(SeedSet, 1+r.Intn(3))
		for j := range seeds {
			seeds[j] = SeedRange{Start: r.Intn(70), Len: r.Intn(15)}
		}
		want, wantOK := -1, false
		for _, s := range seeds {
			for v := s.Start; v < s.Start+s.Len; v++ {
				if got := c.Apply(v); !wantOK || got < want {
					want, wantOK = got, true
				}
			}
		}
		got, ok := c.Minimize(seeds)
		require.Equal(t, wantOK, ok, "chain %v seeds %v", c, seeds)
		if ok {
			require.Equal(t, want, got, "chain %v seeds %v", c, seeds)
		}
	}
}

func TestMinimizePointsMatchApply(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 200; i++ {
		c := randomChain(r)
		points := make([]int, 1+r.Intn(6))
		want := -1
		for j := range points {
			points[j] = r.Intn(80)
			if v := c.Apply(points[j]); want < 0 || v < want {
				want = v
			}
		}
		got, ok := c.Minimize(PointSeeds(points))
		require.True(t, ok)
		require.Equal(t, want, got, "chain %v points %v", c, points)
	}
}

func TestPairSeeds(t *testing.T) {
	got, err := PairSeeds([]int{79, 14, 55, 13})
	require.NoError(t, err)
	assert.Equal(t, SeedSet{{79, 14}, {55, 13}}, got)

	_, err = PairSeeds([]int{1, 2, 3})
	assert.Error(t, err)
	_, err = PairSeeds([]int{1, -2})
	assert.Error(t, err)
}

func TestCoalesce(t *testing.T) {
	in := SeedSet{{50, 10}, {10, 5}, {12, 10}, {60, 2}, {30, 0}, {100, 1}}
	want := SeedSet{{10, 12}, {50, 12}, {100, 1}}
	if diff := cmp.Diff(want, in.Coalesce()); diff != "" {
		t.Errorf("Coalesce mismatch (-want +got):\n%s", diff)
	}
}

func TestSeedSetIntersects(t *testing.T) {
	s := SeedSet{{50, 10}, {10, 5}}
	got, ok := s.Intersects(aoc.Interval{Start: 12, End: 55})
	require.True(t, ok)
	assert.Equal(t, aoc.Interval{Start: 12, End: 15}, got)

	_, ok = s.Intersects(aoc.Interval{Start: 15, End: 50})
	assert.False(t, ok)
}
