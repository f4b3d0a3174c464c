package rotation

import (
	"encoding/json"

	"github.com/pkg/errors"

	"go.viam.com/rotation/linalg"
)

// RotationType names the representation a RotationConfig value is written in.
type RotationType string

// The representations a RotationConfig may use.
const (
	NoType             = RotationType("")
	QuaternionType     = RotationType("quaternion")
	AxisAnglesType     = RotationType("axis_angles")
	EulerAnglesType    = RotationType("euler_angles")
	RotationMatrixType = RotationType("rotation_matrix")
)

// RotationConfig holds a rotation in whichever representation was most
// natural to write down, tagged with its type, so it can be decoded in a
// two-step fashion.
type RotationConfig struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// ParseConfig decodes cfg into the unit quaternion it represents. An empty
// type parses as the identity rotation. Quaternion values are normalized and
// axis_angles axes are scaled to the unit sphere, so hand-written configs
// need not be exact; rotation_matrix values are trusted to be orthonormal,
// exactly as NewFromRotationMatrix trusts its input.
func ParseConfig(cfg RotationConfig) (Quaternion[float64], error) {
	switch RotationType(cfg.Type) {
	case NoType:
		return NewZeroRotation[float64](), nil
	case QuaternionType:
		var q Quaternion[float64]
		if err := json.Unmarshal(cfg.Value, &q); err != nil {
			return Quaternion[float64]{}, err
		}
		return q.Normalize(), nil
	case AxisAnglesType:
		var aa AxisAngle[float64]
		if err := json.Unmarshal(cfg.Value, &aa); err != nil {
			return Quaternion[float64]{}, err
		}
		unit, err := aa.Normalized()
		if err != nil {
			return Quaternion[float64]{}, err
		}
		return unit.Quaternion(), nil
	case EulerAnglesType:
		var ea EulerAngles[float64]
		if err := json.Unmarshal(cfg.Value, &ea); err != nil {
			return Quaternion[float64]{}, err
		}
		return ea.Quaternion(), nil
	case RotationMatrixType:
		var elems []float64
		if err := json.Unmarshal(cfg.Value, &elems); err != nil {
			return Quaternion[float64]{}, err
		}
		if len(elems) != 9 {
			return Quaternion[float64]{}, errors.Errorf("rotation matrix must have 9 elements, got %d", len(elems))
		}
		var m linalg.Mat3[float64]
		copy(m[:], elems)
		return NewFromRotationMatrix(m), nil
	default:
		return Quaternion[float64]{}, errors.Errorf("rotation type %s not recognized", cfg.Type)
	}
}

// NewRotationConfig encodes q in the representation named by t. The
// rotation_matrix representation stores the standard rotation matrix
// row-major, the exact form ParseConfig accepts.
func NewRotationConfig(q Quaternion[float64], t RotationType) (RotationConfig, error) {
	var value interface{}
	switch t {
	case QuaternionType:
		value = q
	case AxisAnglesType:
		value = q.AxisAngle()
	case EulerAnglesType:
		value = q.EulerAngles()
	case RotationMatrixType:
		m := q.RotationMatrixTranspose().Transpose()
		value = m[:]
	default:
		return RotationConfig{}, errors.Errorf("do not know how to encode a rotation as type %q", t)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return RotationConfig{}, err
	}
	return RotationConfig{Type: string(t), Value: raw}, nil
}
