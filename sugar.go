package combi

// Digit matches a single ASCII decimal digit.
func Digit() Matcher[string] {
	return AnyIn('0', '9')
}

// Letter matches a single ASCII letter, upper or lower case.
func Letter() Matcher[string] {
	return Or[string, string](AnyIn('a', 'z'), AnyIn('A', 'Z'))
}

// Space matches a single literal space character.
func Space() Matcher[string] {
	return Char(' ')
}

// Tab matches a single literal tab character.
func Tab() Matcher[string] {
	return Char('\t')
}

// Blank matches a single space or tab character.
func Blank() Matcher[string] {
	return Or[string, string](Space(), Tab())
}

// LineTerminator matches "\r\n", "\n" or "\r".
func LineTerminator() Matcher[string] {
	return Or[string, string](Constant("\r\n"), AnyOf("\r\n"))
}
