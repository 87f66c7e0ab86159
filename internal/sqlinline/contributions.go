package sqlinline

// QListContributions filters by optional issue id ($1) and contributor email
// ($2); $3 selects newest-first ordering.
const QListContributions = `--sql a6ed2b75-2f26-4d18-bf9b-9b0fda202c0b
select id::text, issue_id, issue_title, amount, name, phone, address, additional_info, email, date
from contributions
where ($1::text = '' or issue_id = $1::text)
  and ($2::text = '' or email = $2::text)
order by case when $3::boolean then date end desc nulls last, seq asc;
`

const QInsertContribution = `--sql 11dec1d7-c89d-469e-b947-19bf6aee9601
insert into contributions(id, issue_id, issue_title, amount, name, phone, address, additional_info, email, date)
values ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`
