package repository

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/usecase/interfaces"
)

// fakeDynamo keeps items by id and understands the condition and filter
// expressions the repository emits. Scan pages hold pageSize items before
// filtering, like DynamoDB's Limit.
type fakeDynamo struct {
	mu       sync.Mutex
	items    map[string]map[string]types.AttributeValue
	pageSize int
	scans    int
	err      error
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}, pageSize: 2}
}

func keyID(key map[string]types.AttributeValue) string {
	if s, ok := key["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: maps.Clone(f.items[keyID(in.Key)])}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	id := keyID(in.Item)
	_, exists := f.items[id]
	cond := aws.ToString(in.ConditionExpression)
	if (strings.HasPrefix(cond, "attribute_not_exists") && exists) || (strings.HasPrefix(cond, "attribute_exists") && !exists) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	f.items[id] = maps.Clone(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	id := keyID(in.Key)
	old := f.items[id]
	delete(f.items, id)
	out := &dynamodb.DeleteItemOutput{}
	if in.ReturnValues == types.ReturnValueAllOld {
		out.Attributes = old
	}
	return out, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.scans++

	keys := slices.Sorted(maps.Keys(f.items))
	start := 0
	if after := keyID(in.ExclusiveStartKey); after != "" {
		start, _ = slices.BinarySearch(keys, after)
		start++
	}
	end := min(start+f.pageSize, len(keys))

	out := &dynamodb.ScanOutput{}
	for _, k := range keys[start:end] {
		if f.matches(f.items[k], in.ExpressionAttributeValues) {
			out.Items = append(out.Items, maps.Clone(f.items[k]))
		}
	}
	if end < len(keys) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: keys[end-1]}}
	}
	return out, nil
}

func (f *fakeDynamo) matches(item, values map[string]types.AttributeValue) bool {
	str := func(av types.AttributeValue) string {
		s, _ := av.(*types.AttributeValueMemberS)
		if s == nil {
			return ""
		}
		return s.Value
	}
	if v, ok := values[":type"]; ok && str(item["type"]) != str(v) {
		return false
	}
	if v, ok := values[":q"]; ok {
		q := str(v)
		return strings.Contains(str(item["marca_fold"]), q) || strings.Contains(str(item["modelo_fold"]), q)
	}
	return true
}

func TestEquipmentDynamoRepository_Contract(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) interfaces.IEquipmentRepository {
		return NewEquipmentDynamoRepository(newFakeDynamo(), "")
	})
}

func TestEquipmentDynamoRepository_ScanFollowsPages(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := NewEquipmentDynamoRepository(fake, "equipments_test")
	assert.Equal(t, "equipments_test", repo.tableName)

	for i, id := range []string{"a", "b", "c", "d", "e"} {
		_, err := repo.Insert(ctx, equipmentFixture(id, entities.EquipmentTypeCaldeira, "Baxi", "Neodens", i))
		require.NoError(t, err)
	}

	items, total, err := repo.FindMany(ctx, interfaces.EquipmentFilter{}, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Equal(t, []string{"e", "d", "c"}, ids(items))
	assert.Equal(t, 3, fake.scans)
}

func TestEquipmentDynamoRepository_ItemLayout(t *testing.T) {
	e := equipmentFixture("eq-1", entities.EquipmentTypeBombaCalor, "Panasonic", "Aquarea", 0)
	e.Specs = entities.BombaCalorSpecs{Energia: lo.ToPtr("padrão"), Cop: lo.ToPtr(4.2)}
	e.PDF = lo.ToPtr("data:application/pdf;base64,JVBERi0=")

	av, err := attributevalue.MarshalMap(toEquipmentItem(e))
	require.NoError(t, err)

	assert.Contains(t, av, "cop")
	assert.Contains(t, av, "energia")
	assert.Contains(t, av, "pdf")
	assert.Equal(t, &types.AttributeValueMemberS{Value: "panasonic"}, av["marca_fold"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "2024-03-10T09:00:00.123456789Z"}, av["created_at"])
	for _, absent := range []string{"seer", "volume", "potencia", "tem_qpr", "notas", "photo"} {
		assert.NotContains(t, av, absent)
	}

	var it equipmentItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &it))
	back, err := fromEquipmentItem(it)
	require.NoError(t, err)
	assert.Equal(t, e, back)
}

func TestEquipmentDynamoRepository_Errors(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	fake.err = errors.New("throttled")
	repo := NewEquipmentDynamoRepository(fake, "")

	_, err := repo.FindByID(ctx, "eq-1")
	assert.ErrorIs(t, err, fake.err)
	_, _, err = repo.FindMany(ctx, interfaces.EquipmentFilter{}, 0, 9)
	assert.ErrorIs(t, err, fake.err)
	_, err = repo.Update(ctx, equipmentFixture("eq-1", entities.EquipmentTypeCaldeira, "a", "b", 0))
	assert.ErrorIs(t, err, fake.err)
	_, err = repo.Delete(ctx, "eq-1")
	assert.ErrorIs(t, err, fake.err)

	fake.err = nil
	fake.items["bad"] = map[string]types.AttributeValue{
		"id":         &types.AttributeValueMemberS{Value: "bad"},
		"type":       &types.AttributeValueMemberS{Value: "Caldeira"},
		"created_at": &types.AttributeValueMemberS{Value: "yesterday"},
		"updated_at": &types.AttributeValueMemberS{Value: "today"},
	}
	_, err = repo.FindByID(ctx, "bad")
	assert.Error(t, err)
}
