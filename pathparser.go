package svg

import (
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// pathDataParser walks the lexed token stream of a path d attribute
// and emits the command sequence. Each instruction letter is followed
// by a run of numbers whose length must fit the command's arity.
type pathDataParser struct {
	lex  *gl.Lexer
	cmds []PathCommand
}

// ParsePathData parses the value of a path d attribute into its
// command sequence. Commands keep their source form: relative
// commands stay relative, coordinate runs stay split per the grammar
// (a moveto followed by extra pairs yields implicit linetos).
func ParsePathData(d string) ([]PathCommand, error) {
	// lex errors surface as ItemError tokens in the stream
	l, _ := gl.Lex("d", d)
	p := &pathDataParser{lex: l}
	for {
		p.lex.ConsumeWhiteSpace()
		i := p.lex.NextItem()
		switch i.Type {
		case gl.ItemError:
			return nil, &ParseError{Attr: "d", Msg: "bad token " + strconv.Quote(i.Value)}
		case gl.ItemEOS:
			return p.cmds, nil
		case gl.ItemLetter:
			if err := p.parseCommand(i.Value); err != nil {
				return nil, err
			}
		}
	}
}

func (p *pathDataParser) parseCommand(letter string) error {
	if len(letter) != 1 {
		return &ParseError{Attr: "d", Msg: "unknown command " + strconv.Quote(letter)}
	}
	c := letter[0]
	rel := c >= 'a' && c <= 'z'
	upper := c
	if rel {
		upper = c - ('a' - 'A')
	}

	if upper == 'Z' {
		p.cmds = append(p.cmds, PathCommand{Kind: ClosePath})
		return nil
	}

	nums, err := p.readNumbers()
	if err != nil {
		return err
	}
	if len(nums) == 0 {
		return &ParseError{Attr: "d", Msg: "command " + letter + " without arguments"}
	}

	switch upper {
	case 'M':
		if len(nums)%2 != 0 {
			return badArity(letter)
		}
		// extra coordinate pairs after a moveto are implicit linetos
		p.emitPairs(MoveTo, rel, nums[:2])
		p.emitPairs(LineTo, rel, nums[2:])
	case 'L':
		if len(nums)%2 != 0 {
			return badArity(letter)
		}
		p.emitPairs(LineTo, rel, nums)
	case 'H':
		for _, n := range nums {
			p.cmds = append(p.cmds, PathCommand{Kind: HLineTo, Relative: rel, X: n})
		}
	case 'V':
		for _, n := range nums {
			p.cmds = append(p.cmds, PathCommand{Kind: VLineTo, Relative: rel, Y: n})
		}
	case 'C':
		if len(nums)%6 != 0 {
			return badArity(letter)
		}
		for i := 0; i < len(nums); i += 6 {
			p.cmds = append(p.cmds, PathCommand{Kind: CubicTo, Relative: rel,
				C1: Tuple{nums[i], nums[i+1]},
				C2: Tuple{nums[i+2], nums[i+3]},
				To: Tuple{nums[i+4], nums[i+5]}})
		}
	case 'S':
		if len(nums)%4 != 0 {
			return badArity(letter)
		}
		for i := 0; i < len(nums); i += 4 {
			p.cmds = append(p.cmds, PathCommand{Kind: SmoothCubicTo, Relative: rel,
				C2: Tuple{nums[i], nums[i+1]},
				To: Tuple{nums[i+2], nums[i+3]}})
		}
	case 'Q':
		if len(nums)%4 != 0 {
			return badArity(letter)
		}
		for i := 0; i < len(nums); i += 4 {
			p.cmds = append(p.cmds, PathCommand{Kind: QuadTo, Relative: rel,
				C1: Tuple{nums[i], nums[i+1]},
				To: Tuple{nums[i+2], nums[i+3]}})
		}
	case 'T':
		if len(nums)%2 != 0 {
			return badArity(letter)
		}
		p.emitPairs(SmoothQuadTo, rel, nums)
	case 'A':
		if len(nums)%7 != 0 {
			return badArity(letter)
		}
		for i := 0; i < len(nums); i += 7 {
			large, err := arcFlag(nums[i+3])
			if err != nil {
				return err
			}
			sweep, err := arcFlag(nums[i+4])
			if err != nil {
				return err
			}
			p.cmds = append(p.cmds, PathCommand{Kind: ArcTo, Relative: rel,
				Rx: nums[i], Ry: nums[i+1], XRotation: nums[i+2],
				LargeArc: large, Sweep: sweep,
				To: Tuple{nums[i+5], nums[i+6]}})
		}
	default:
		return &ParseError{Attr: "d", Msg: "unknown command " + strconv.Quote(letter)}
	}
	return nil
}

func (p *pathDataParser) emitPairs(kind CommandKind, rel bool, nums []float64) {
	for i := 0; i < len(nums); i += 2 {
		p.cmds = append(p.cmds, PathCommand{Kind: kind, Relative: rel,
			To: Tuple{nums[i], nums[i+1]}})
	}
}

// readNumbers consumes the run of numbers following an instruction
// letter, separated by whitespace or commas.
func (p *pathDataParser) readNumbers() ([]float64, error) {
	var nums []float64
	p.lex.ConsumeWhiteSpace()
	for p.lex.PeekItem().Type == gl.ItemNumber {
		n, err := parseNumber(p.lex.NextItem())
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
		p.lex.ConsumeWhiteSpace()
		p.lex.ConsumeComma()
		p.lex.ConsumeWhiteSpace()
	}
	return nums, nil
}

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, &ParseError{Attr: "d", Msg: "expected number, got " + strconv.Quote(i.Value)}
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, &ParseError{Attr: "d", Msg: "malformed number " + strconv.Quote(i.Value), Err: err}
	}
	return n, nil
}

func badArity(letter string) error {
	return &ParseError{Attr: "d", Msg: "wrong argument count for command " + letter}
}

func arcFlag(f float64) (bool, error) {
	switch f {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &ParseError{Attr: "d", Msg: "arc flag must be 0 or 1"}
	}
}
