package lexer

// ===== Классификаторы =====

// ASCII fast-path; любые байты >= 0x80 лексер пропускает как часть
// идентификатора (полной Unicode-валидации здесь не нужно).
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// ".5": current dot followed by a digit?
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// ===== Матчеры последовательностей операторов (жадность) =====

// try2/try3/try4 consume 2/3/4 bytes when they match exactly.
func (lx *Lexer) try4(a, b, c, d byte) bool {
	if lx.cursor.Off+3 >= lx.cursor.Limit {
		return false
	}
	if lx.cursor.Peek() != a || lx.cursor.PeekAt(1) != b || lx.cursor.PeekAt(2) != c || lx.cursor.PeekAt(3) != d {
		return false
	}
	lx.cursor.Off += 4
	return true
}

func (lx *Lexer) try3(a, b, c byte) bool {
	if lx.cursor.Off+2 >= lx.cursor.Limit {
		return false
	}
	if lx.cursor.Peek() != a || lx.cursor.PeekAt(1) != b || lx.cursor.PeekAt(2) != c {
		return false
	}
	lx.cursor.Off += 3
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Off += 2
	return true
}
