package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/sortwiz/internal/stepper"
)

// Info describes an algorithm for menus and help text.
type Info struct {
	Algorithm       stepper.Algorithm
	Name            string
	Key             rune
	TimeComplexity  string
	SpaceComplexity string
}

func (i Info) Complexity() string {
	return fmt.Sprintf("Time Complexity: %s | Space Complexity: %s", i.TimeComplexity, i.SpaceComplexity)
}

type Registry struct {
	algorithms map[string]Info
	aliases    map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]Info),
		aliases:    make(map[string]string),
	}

	r.register(Info{Algorithm: stepper.BubbleSort, Key: 'b', TimeComplexity: "O(n^2)", SpaceComplexity: "O(1)"})
	r.register(Info{Algorithm: stepper.InsertionSort, Key: 'i', TimeComplexity: "O(n^2)", SpaceComplexity: "O(1)"})
	r.register(Info{Algorithm: stepper.SelectionSort, Key: 's', TimeComplexity: "O(n^2)", SpaceComplexity: "O(1)"})
	r.register(Info{Algorithm: stepper.HeapSort, Key: 'h', TimeComplexity: "O(n log n)", SpaceComplexity: "O(1)"})

	return r
}

func (r *Registry) register(info Info) {
	info.Name = info.Algorithm.String()
	key := info.Algorithm.Key()
	r.algorithms[key] = info
	r.aliases[string(info.Key)] = key
}

func (r *Registry) Get(name string) (Info, error) {
	if key, ok := r.aliases[name]; ok {
		name = key
	}
	if info, ok := r.algorithms[name]; ok {
		return info, nil
	}
	a, err := stepper.ParseAlgorithm(name)
	if err != nil {
		return Info{}, err
	}
	return r.algorithms[a.Key()], nil
}

func (r *Registry) Lookup(a stepper.Algorithm) Info {
	if info, ok := r.algorithms[a.Key()]; ok {
		return info
	}
	return Info{Algorithm: a, Name: a.String(), TimeComplexity: "Not specified", SpaceComplexity: "Not specified"}
}

// ByKey resolves a key binding such as 'h' to its algorithm.
func (r *Registry) ByKey(k rune) (Info, bool) {
	key, ok := r.aliases[string(k)]
	if !ok {
		return Info{}, false
	}
	return r.algorithms[key], true
}

// List returns every algorithm in menu order.
func (r *Registry) List() []Info {
	infos := make([]Info, 0, len(r.algorithms))
	for _, info := range r.algorithms {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Algorithm < infos[j].Algorithm })
	return infos
}
