package valueobjects

import "errors"

var (
	ErrInvalidNIB = errors.New("nib must be exactly 13 digits")
)

// nibLength é o tamanho fixo do Nomor Induk Berusaha (registro nacional)
const nibLength = 13

// NIB é um value object para o número de registro nacional de um negócio
type NIB struct {
	value string
}

// NewNIB cria um novo NIB validado
func NewNIB(value string) (NIB, error) {
	if len(value) != nibLength {
		return NIB{}, ErrInvalidNIB
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return NIB{}, ErrInvalidNIB
		}
	}
	return NIB{value: value}, nil
}

// String retorna o valor do NIB
func (n NIB) String() string {
	return n.value
}
