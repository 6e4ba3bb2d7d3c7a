package repository

import (
	"testing"
)

// 各Postgresリポジトリが対応するインターフェースを満たすことを検証
func TestPostgresUserRepo_ImplementsInterface(t *testing.T) {
	var _ UserRepository = (*PostgresUserRepo)(nil)
}

func TestPostgresQuizRepo_ImplementsInterface(t *testing.T) {
	var _ QuizRepository = (*PostgresQuizRepo)(nil)
}

func TestPostgresCounselorRepo_ImplementsInterface(t *testing.T) {
	var _ CounselorRepository = (*PostgresCounselorRepo)(nil)
}

func TestPostgresContactRepo_ImplementsInterface(t *testing.T) {
	var _ ContactRepository = (*PostgresContactRepo)(nil)
}

// コンストラクタがnil DBでも初期化されることを検証
// （実際の接続検証は呼び出し側のPingで行う）
func TestNewRepos_Initialize(t *testing.T) {
	if NewPostgresUserRepo(nil) == nil {
		t.Fatal("expected non-nil user repo")
	}
	if NewPostgresQuizRepo(nil) == nil {
		t.Fatal("expected non-nil quiz repo")
	}
	if NewPostgresCounselorRepo(nil) == nil {
		t.Fatal("expected non-nil counselor repo")
	}
	if NewPostgresContactRepo(nil) == nil {
		t.Fatal("expected non-nil contact repo")
	}
}
