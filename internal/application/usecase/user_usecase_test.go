package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/application/usecase"
	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/pkg/password"
)

func newUserFixture() (*usecase.UserUseCase, *memUserRepo, *memShopRepo, *password.Hasher) {
	users := newMemUserRepo()
	shops := newMemShopRepo(users)
	hasher := password.NewHasher()
	hasher.SetCost(bcrypt.MinCost)
	return usecase.NewUserUseCase(users, shops, hasher), users, shops, hasher
}

func createUserIn(email string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:     email,
		Password:  "secret1",
		FirstName: "Ana",
		LastName:  "García",
		Role:      "staff",
	}
}

func TestUserCreate_HasheaElPassword(t *testing.T) {
	uc, users, _, hasher := newUserFixture()

	out, err := uc.Create(createUserIn("a@x.com"))
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)
	assert.Equal(t, "active", out.Status, "status por defecto debe ser active")

	stored, err := users.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash, "el password nunca se guarda en plano")
	assert.True(t, hasher.Verify("secret1", stored.PasswordHash))
}

func TestUserCreate_EmailDuplicado_RetornaConflict(t *testing.T) {
	uc, users, _, _ := newUserFixture()

	out, err := uc.Create(createUserIn("a@x.com"))
	require.NoError(t, err)

	in2 := createUserIn("a@x.com")
	in2.FirstName = "Otro"
	_, err = uc.Create(in2)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// El registro original queda intacto.
	stored, _ := users.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "Ana", stored.FirstName)
}

func TestUserCreate_ShopInexistente_NoPersisteNada(t *testing.T) {
	uc, users, _, _ := newUserFixture()

	shopID := "11111111-1111-1111-1111-111111111111"
	in := createUserIn("a@x.com")
	in.ShopID = &shopID

	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrShopNotFound)

	// No debe quedar ningún usuario a medias.
	list, _ := users.List(100, 0)
	assert.Empty(t, list)
}

func TestUserCreate_ConShopValida_AsociaLaTienda(t *testing.T) {
	uc, users, shops, _ := newUserFixture()
	shopUC := usecase.NewShopUseCase(shops, users, &memTxRunner{shops: shops, users: users})

	shop, err := shopUC.Create(dto.CreateShopRequest{Name: "Acme"})
	require.NoError(t, err)

	in := createUserIn("a@x.com")
	in.ShopID = &shop.ID
	out, err := uc.Create(in)
	require.NoError(t, err)
	require.NotNil(t, out.ShopID)
	assert.Equal(t, shop.ID, *out.ShopID)
	require.NotNil(t, out.Shop)
	assert.Equal(t, "Acme", out.Shop.Name)
}

func TestUserUpdate_MergeSoloCamposPresentes(t *testing.T) {
	uc, _, _, _ := newUserFixture()

	out, err := uc.Create(createUserIn("a@x.com"))
	require.NoError(t, err)

	nuevo := "Lucía"
	updated, err := uc.Update(out.ID, dto.UpdateUserRequest{FirstName: &nuevo})
	require.NoError(t, err)

	assert.Equal(t, "Lucía", updated.FirstName)
	assert.Equal(t, "García", updated.LastName, "los campos no enviados no cambian")
	assert.Equal(t, "a@x.com", updated.Email)
	assert.Equal(t, "staff", updated.Role)
}

func TestUserUpdate_PasswordSeRehashea(t *testing.T) {
	uc, users, _, hasher := newUserFixture()

	out, err := uc.Create(createUserIn("a@x.com"))
	require.NoError(t, err)
	before, _ := users.GetByID(out.ID)

	nueva := "nueva-clave"
	_, err = uc.Update(out.ID, dto.UpdateUserRequest{Password: &nueva})
	require.NoError(t, err)

	after, _ := users.GetByID(out.ID)
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash)
	assert.True(t, hasher.Verify("nueva-clave", after.PasswordHash))
	assert.False(t, hasher.Verify("secret1", after.PasswordHash))
}

func TestUserUpdate_ShopInexistente_AsociacionPreviaIntacta(t *testing.T) {
	uc, users, shops, _ := newUserFixture()
	shopUC := usecase.NewShopUseCase(shops, users, &memTxRunner{shops: shops, users: users})

	shop, err := shopUC.Create(dto.CreateShopRequest{Name: "Acme"})
	require.NoError(t, err)

	in := createUserIn("a@x.com")
	in.ShopID = &shop.ID
	out, err := uc.Create(in)
	require.NoError(t, err)

	fantasma := "22222222-2222-2222-2222-222222222222"
	_, err = uc.Update(out.ID, dto.UpdateUserRequest{ShopID: &fantasma})
	assert.ErrorIs(t, err, domain.ErrShopNotFound)

	stored, _ := users.GetByID(out.ID)
	require.NotNil(t, stored.ShopID)
	assert.Equal(t, shop.ID, *stored.ShopID, "la asociación previa no debe cambiar")
}

func TestUserUpdate_IDInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _, _ := newUserFixture()
	nuevo := "X"
	_, err := uc.Update("33333333-3333-3333-3333-333333333333", dto.UpdateUserRequest{FirstName: &nuevo})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserDelete(t *testing.T) {
	uc, _, _, _ := newUserFixture()

	out, err := uc.Create(createUserIn("a@x.com"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(out.ID))
	assert.ErrorIs(t, uc.Delete(out.ID), domain.ErrUserNotFound)

	_, err = uc.GetByID(out.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
