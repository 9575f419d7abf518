package vec_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dynarr/internal/vec"
)

var _ = Describe("growth policy", func() {
	It("doubles from the current capacity until the minimum fits", func() {
		a := vec.WithCapacity[int](5)
		for i := 0; i < 6; i++ {
			a.Push(i)
		}
		Expect(a.Cap()).To(Equal(10))
		for i := 6; i < 11; i++ {
			a.Push(i)
		}
		Expect(a.Cap()).To(Equal(20))
	})

	It("grows a zero-capacity array starting from one", func() {
		a := vec.WithCapacity[int](0)
		a.Push(1)
		Expect(a.Cap()).To(Equal(1))
		a.Push(2)
		Expect(a.Cap()).To(Equal(2))
		a.Push(3)
		Expect(a.Cap()).To(Equal(4))
	})

	It("keeps capacity monotonically non-decreasing across removals", func() {
		a := vec.WithCapacity[int](1)
		caps := []int{}
		for i := 0; i < 32; i++ {
			a.Push(i)
			caps = append(caps, a.Cap())
		}
		for i := 0; i < 32; i++ {
			_, err := a.Pop()
			Expect(err).NotTo(HaveOccurred())
			caps = append(caps, a.Cap())
		}
		for i := 1; i < len(caps); i++ {
			Expect(caps[i]).To(BeNumerically(">=", caps[i-1]))
		}
		Expect(a.Len()).To(Equal(0))
	})

	It("never loses or reorders elements across resizes", func() {
		a := vec.WithCapacity[int](2)
		for i := 0; i < 200; i++ {
			a.Push(i)
			Expect(a.Cap()).To(BeNumerically(">=", a.Len()))
		}
		items := a.Items()
		for i, v := range items {
			Expect(v).To(Equal(i))
		}
	})

	It("grows under unshift the same way as under push", func() {
		a := vec.WithCapacity[int](2)
		for i := 0; i < 5; i++ {
			a.Unshift(i)
		}
		Expect(a.Len()).To(Equal(5))
		Expect(a.Cap()).To(Equal(8))
		Expect(a.Items()).To(Equal([]int{4, 3, 2, 1, 0}))
	})
})

var _ = Describe("ownership", func() {
	It("clones into an independent buffer", func() {
		a := vec.New[int]()
		a.Push(1)
		a.Push(2)
		b := a.Clone()

		b.Push(3)
		Expect(b.Set(0, 99)).To(Succeed())

		Expect(a.Items()).To(Equal([]int{1, 2}))
		Expect(b.Items()).To(Equal([]int{99, 2, 3}))
	})

	It("leaves a moved-from array empty and reusable", func() {
		a := vec.WithCapacity[int](6)
		a.Push(1)
		b := vec.New[int]()
		b.MoveFrom(a)

		Expect(a.Len()).To(BeZero())
		Expect(a.Cap()).To(BeZero())
		Expect(b.Items()).To(Equal([]int{1}))
		Expect(b.Cap()).To(Equal(6))

		a.Push(7)
		Expect(b.Items()).To(Equal([]int{1}))
	})

	It("treats equality as length plus pairwise elements, ignoring history", func() {
		grown := vec.WithCapacity[int](1)
		preallocated := vec.WithCapacity[int](64)
		for i := 0; i < 10; i++ {
			grown.Push(i)
			preallocated.Push(i)
		}
		Expect(grown.Cap()).NotTo(Equal(preallocated.Cap()))
		Expect(vec.Equal(grown, preallocated)).To(BeTrue())
	})
})
