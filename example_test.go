package parsea_test

import (
	"fmt"

	"github.com/npillmayer/parsea"
)

func ExampleSepBy() {
	digit := parsea.OneOf([]rune("0123456789")...)
	list := parsea.SepBy(digit, parsea.El(','), parsea.SepOptions{Min: 1})
	result, _ := list.Parse(parsea.Slice[rune]([]rune("1,2,3")))
	fmt.Println(result.Success, string(result.Value), result.Index)
	// Output: true 123 5
}

func ExampleParser_Label() {
	digit := parsea.OneOf([]rune("0123456789")...).Label("digit")
	_, err := parsea.ParseValue(digit, parsea.Slice[rune]([]rune("x")))
	fmt.Println(err)
	// Output: parse error at position 0: expected digit
}

func ExampleDo() {
	pair := parsea.Do(func(pf *parsea.Performer[rune]) ([2]rune, error) {
		a, err := parsea.Perform(pf, parsea.AnyElement[rune]())
		if err != nil {
			return [2]rune{}, err
		}
		if _, err = parsea.Perform(pf, parsea.El('=')); err != nil {
			return [2]rune{}, err
		}
		b, err := parsea.Perform(pf, parsea.AnyElement[rune]())
		return [2]rune{a, b}, err
	})
	v, err := parsea.ParseValue(pair, parsea.Slice[rune]([]rune("x=1")))
	fmt.Println(string(v[:]), err)
	// Output: x1 <nil>
}
