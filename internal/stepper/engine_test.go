package stepper_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortwiz/internal/stepper"
)

func randomSequence(r *rand.Rand, n int, hi int64) stepper.Sequence {
	s := make(stepper.Sequence, n)
	for i := range s {
		s[i] = r.Int63n(hi + 1)
	}
	return s
}

// drain advances e to completion and returns every emitted event.
func drain(e *stepper.Engine) []stepper.StepEvent {
	var events []stepper.StepEvent
	for r := e.Advance(); !r.Finished; r = e.Advance() {
		events = append(events, r.Event)
	}
	return events
}

func mustStart(s stepper.Sequence, d stepper.Direction, a stepper.Algorithm) *stepper.Engine {
	e, err := stepper.Start(s, d, a)
	Expect(err).NotTo(HaveOccurred())
	return e
}

var directions = []stepper.Direction{stepper.Ascending, stepper.Descending}

var _ = Describe("Engine", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(42))
	})

	Describe("multiset and ordering", func() {
		for _, algo := range stepper.Algorithms {
			for _, dir := range directions {
				It("permutes and sorts with "+algo.String()+" "+dir.String(), func() {
					for _, n := range []int{0, 1, 2, 3, 7, 16, 33, 100} {
						s := randomSequence(rng, n, 200)
						orig := s.Clone()
						e := mustStart(s, dir, algo)

						for r := e.Advance(); !r.Finished; r = e.Advance() {
							Expect(s).To(HaveLen(n))
							Expect(s.SameValues(orig)).To(BeTrue())
						}
						Expect(s.SameValues(orig)).To(BeTrue())
						Expect(s.IsSorted(dir)).To(BeTrue(), "n=%d input=%v got=%v", n, orig, s)
					}
				})
			}
		}
	})

	Describe("step count bounds", func() {
		DescribeTable("quadratic sorts stay under n(n-1)/2",
			func(algo stepper.Algorithm, dir stepper.Direction) {
				for _, n := range []int{2, 3, 5, 20, 64} {
					s := randomSequence(rng, n, 50)
					steps := len(drain(mustStart(s, dir, algo)))
					bound := n * (n - 1) / 2
					if algo == stepper.SelectionSort {
						// one step per outer iteration exceeds n(n-1)/2 only at n=2
						bound = max(n, bound)
					}
					Expect(steps).To(BeNumerically("<=", bound), "n=%d", n)
				}
			},
			Entry("bubble asc", stepper.BubbleSort, stepper.Ascending),
			Entry("bubble desc", stepper.BubbleSort, stepper.Descending),
			Entry("insertion asc", stepper.InsertionSort, stepper.Ascending),
			Entry("insertion desc", stepper.InsertionSort, stepper.Descending),
			Entry("selection asc", stepper.SelectionSort, stepper.Ascending),
			Entry("selection desc", stepper.SelectionSort, stepper.Descending),
		)

		It("emits exactly n selection steps", func() {
			for _, n := range []int{2, 3, 10, 100} {
				for _, dir := range directions {
					s := randomSequence(rng, n, 200)
					Expect(drain(mustStart(s, dir, stepper.SelectionSort))).To(HaveLen(n))
				}
			}
		})

		It("numbers steps from one", func() {
			s := stepper.Sequence{3, 2, 1}
			events := drain(mustStart(s, stepper.Ascending, stepper.BubbleSort))
			for i, ev := range events {
				Expect(ev.Step).To(Equal(i + 1))
			}
		})
	})

	Describe("terminal state", func() {
		It("keeps returning Finished without mutating", func() {
			s := stepper.Sequence{5, 3, 4, 1, 2}
			e := mustStart(s, stepper.Ascending, stepper.HeapSort)
			drain(e)
			final := s.Clone()
			for range 5 {
				Expect(e.Advance().Finished).To(BeTrue())
			}
			Expect(s).To(Equal(final))
			Expect(e.Done()).To(BeTrue())
		})

		It("finishes a single element immediately", func() {
			for _, algo := range stepper.Algorithms {
				e := mustStart(stepper.Sequence{1}, stepper.Ascending, algo)
				Expect(e.Advance().Finished).To(BeTrue(), algo.String())
				Expect(e.Steps()).To(BeZero())
			}
		})

		It("leaves a valid permutation on cancel", func() {
			s := randomSequence(rng, 30, 100)
			orig := s.Clone()
			e := mustStart(s, stepper.Descending, stepper.InsertionSort)
			for range 10 {
				e.Advance()
			}
			e.Cancel()
			snapshot := s.Clone()

			Expect(e.Advance().Finished).To(BeTrue())
			Expect(s).To(Equal(snapshot))
			Expect(s.SameValues(orig)).To(BeTrue())
		})
	})

	Describe("duplicates", func() {
		It("never swaps equal values in bubble and insertion", func() {
			for _, algo := range []stepper.Algorithm{stepper.BubbleSort, stepper.InsertionSort} {
				for _, dir := range directions {
					s := stepper.Sequence{7, 7, 7, 7, 7, 7}
					Expect(drain(mustStart(s, dir, algo))).To(BeEmpty())
				}
			}
		})

		It("reduces selection to self-swaps", func() {
			for _, dir := range directions {
				s := stepper.Sequence{4, 4, 4, 4}
				events := drain(mustStart(s, dir, stepper.SelectionSort))
				Expect(events).To(HaveLen(4))
				for i, ev := range events {
					Expect(ev.Highlights).To(Equal([]stepper.Highlight{{Index: i, Role: stepper.Secondary}}))
				}
				Expect(s).To(Equal(stepper.Sequence{4, 4, 4, 4}))
			}
		})
	})

	Describe("highlights", func() {
		It("marks the bubble swap pair", func() {
			s := stepper.Sequence{5, 3, 4, 1, 2}
			e := mustStart(s, stepper.Ascending, stepper.BubbleSort)

			r := e.Advance()
			Expect(r.Finished).To(BeFalse())
			Expect(s).To(Equal(stepper.Sequence{3, 5, 4, 1, 2}))
			Expect(r.Event.Op).To(Equal(stepper.OpSwap))
			Expect(r.Event.Highlights).To(Equal([]stepper.Highlight{
				{Index: 0, Role: stepper.Primary},
				{Index: 1, Role: stepper.Secondary},
			}))

			drain(e)
			Expect(s).To(Equal(stepper.Sequence{1, 2, 3, 4, 5}))
		})

		It("marks the shifted neighbour and the new slot in insertion", func() {
			s := stepper.Sequence{2, 3, 1}
			events := drain(mustStart(s, stepper.Ascending, stepper.InsertionSort))

			Expect(events).To(HaveLen(2))
			Expect(events[0].Index(stepper.Primary)).To(Equal(2))
			Expect(events[0].Index(stepper.Secondary)).To(Equal(1))
			Expect(events[1].Index(stepper.Primary)).To(Equal(1))
			Expect(events[1].Index(stepper.Secondary)).To(Equal(0))
			Expect(events[1].Op).To(Equal(stepper.OpShift))
			Expect(s).To(Equal(stepper.Sequence{1, 2, 3}))
		})

		It("marks i and the extremal index in selection", func() {
			s := stepper.Sequence{3, 1, 2}
			r := mustStart(s, stepper.Ascending, stepper.SelectionSort).Advance()
			role, ok := r.Event.RoleAt(0)
			Expect(ok).To(BeTrue())
			Expect(role).To(Equal(stepper.Primary))
			Expect(r.Event.Index(stepper.Secondary)).To(Equal(1))
		})
	})

	Describe("heap sort", func() {
		It("builds the heap before extracting", func() {
			s := stepper.Sequence{4, 10, 3, 5, 1}
			e := mustStart(s, stepper.Ascending, stepper.HeapSort)

			pairs := [][2]int{}
			for range 3 {
				r := e.Advance()
				Expect(r.Finished).To(BeFalse())
				pairs = append(pairs, [2]int{r.Event.Index(stepper.Primary), r.Event.Index(stepper.Secondary)})
				if len(pairs) == 2 {
					Expect(s).To(Equal(stepper.Sequence{10, 5, 3, 4, 1}))
				}
			}
			Expect(pairs).To(Equal([][2]int{{0, 1}, {1, 3}, {4, 0}}))

			drain(e)
			Expect(s).To(Equal(stepper.Sequence{1, 3, 4, 5, 10}))
		})

		It("sorts descending through a min-heap", func() {
			s := stepper.Sequence{4, 10, 3, 5, 1}
			drain(mustStart(s, stepper.Descending, stepper.HeapSort))
			Expect(s).To(Equal(stepper.Sequence{10, 5, 4, 3, 1}))
		})
	})

	Describe("All", func() {
		It("drains the remaining steps", func() {
			s := stepper.Sequence{9, 8, 7, 6}
			e := mustStart(s, stepper.Ascending, stepper.BubbleSort)
			e.Advance()

			count := 0
			for range e.All() {
				count++
			}
			Expect(count + 1).To(Equal(e.Steps()))
			Expect(s.IsSorted(stepper.Ascending)).To(BeTrue())
		})

		It("stops early when the consumer breaks", func() {
			s := stepper.Sequence{9, 8, 7, 6}
			e := mustStart(s, stepper.Ascending, stepper.BubbleSort)
			for range e.All() {
				break
			}
			Expect(e.Steps()).To(Equal(1))
			Expect(e.Done()).To(BeFalse())
		})
	})

	It("rejects unknown selections", func() {
		_, err := stepper.Start(stepper.Sequence{1, 2}, stepper.Ascending, stepper.Algorithm(99))
		Expect(err).To(MatchError(stepper.ErrUnknownAlgorithm))

		_, err = stepper.Start(stepper.Sequence{1, 2}, stepper.Direction(7), stepper.BubbleSort)
		Expect(err).To(MatchError(stepper.ErrUnknownDirection))
	})
})
